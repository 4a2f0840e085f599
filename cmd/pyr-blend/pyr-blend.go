package main

import(
	"flag"
	"log"

	"github.com/abworrall/pyr-blend/pkg/pblend"
	"github.com/abworrall/pyr-blend/pkg/pyramid"
)

var(
	fVerbosity int
	fConfig string
	fMaxLevels int
	fFilterSizeImage int
	fFilterSizeMask int
	fOutput string
	fPreview string
	fPyramid string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fConfig, "config", "", "optional YAML config file; flags override it")
	flag.IntVar(&fMaxLevels, "levels", 5, "max number of pyramid levels")
	flag.IntVar(&fFilterSizeImage, "imagefilter", 5, "smoothing kernel length for the image pyramids")
	flag.IntVar(&fFilterSizeMask, "maskfilter", 3, "smoothing kernel length for the mask pyramid")
	flag.StringVar(&fOutput, "o", "blended.png", "output filename")
	flag.StringVar(&fPreview, "preview", "", "if set, write a 2x2 inputs/mask/output montage here")
	flag.StringVar(&fPyramid, "pyramids", "", "if set, write the tiled laplacian pyramid of the first input here")
}

// applyFlagOverrides copies in just the flags the user actually set,
// so values from a -config file survive unless overridden.
func applyFlagOverrides(cfg pblend.Config, visit func(func(*flag.Flag))) pblend.Config {
	visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":           cfg.Verbosity = fVerbosity
		case "levels":      cfg.MaxLevels = fMaxLevels
		case "imagefilter": cfg.FilterSizeImage = fFilterSizeImage
		case "maskfilter":  cfg.FilterSizeMask = fFilterSizeMask
		case "o":           cfg.OutputFile = fOutput
		case "preview":     cfg.PreviewFile = fPreview
		case "pyramids":    cfg.PyramidFile = fPyramid
		}
	})
	return cfg
}

func main() {
	flag.Parse()
	log.Printf("pyr-blend starting\n")

	args := flag.Args()
	if len(args) != 3 {
		log.Fatal("usage: pyr-blend [flags] imageA imageB mask")
	}

	cfg := pblend.NewConfig()
	if fConfig != "" {
		var err error
		if cfg, err = pblend.LoadConfig(fConfig); err != nil {
			log.Fatal(err)
		}
		log.Printf("Loaded base configuration from %s\n", fConfig)
	}

	cfg = applyFlagOverrides(cfg, flag.Visit)

	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	imgA, err := pblend.LoadRGB(args[0])
	if err != nil {
		log.Fatal(err)
	}
	imgB, err := pblend.LoadRGB(args[1])
	if err != nil {
		log.Fatal(err)
	}
	mask, err := pblend.LoadMask(args[2], cfg.MaskThreshold)
	if err != nil {
		log.Fatal(err)
	}

	blended, err := pblend.BlendRGB(&imgA, &imgB, &mask, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := pblend.WritePNG(blended.ToImage(), cfg.OutputFile); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s\n", cfg.OutputFile)

	if cfg.PreviewFile != "" {
		if err := pblend.SavePreviewPNG(&imgA, &imgB, &mask, &blended, cfg.PreviewFile); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s\n", cfg.PreviewFile)
	}

	if cfg.PyramidFile != "" {
		gray, err := pblend.LoadGray(args[0])
		if err != nil {
			log.Fatal(err)
		}
		lap, _, err := pyramid.BuildLaplacian(&gray, cfg.MaxLevels, cfg.FilterSizeImage)
		if err != nil {
			log.Fatal(err)
		}
		if err := pblend.SavePyramidPNG(lap, len(lap), "laplacian pyramid", cfg.PyramidFile); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s\n", cfg.PyramidFile)
	}
}
