package pblend

import(
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Verbosity       int

	MaxLevels       int     // cap on pyramid depth; the resolution floor may stop earlier
	FilterSizeImage int     // kernel length for the two image pyramids
	FilterSizeMask  int     // kernel length for the mask pyramid
	MaskThreshold   float64 // gray level above which a mask pixel counts as "select A"

	OutputFile      string
	PreviewFile     string  // if set, also write the 2x2 inputs/mask/output montage
	PyramidFile     string  // if set, also write the tiled laplacian pyramid of input A
}

func NewConfig() Config {
	return Config{
		MaxLevels:       5,
		FilterSizeImage: 5,
		FilterSizeMask:  3,
		MaskThreshold:   127.0 / 255.0,
		OutputFile:      "blended.png",
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func LoadConfig(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}

	return newConfigFromYaml(contents)
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}
