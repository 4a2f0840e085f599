package pblend

import(
	"log"

	"github.com/skypies/util/histogram"
	"golang.org/x/sync/errgroup"

	"github.com/abworrall/pyr-blend/pkg/pgrid"
	"github.com/abworrall/pyr-blend/pkg/pyramid"
)

// BlendRGB runs the single-channel blend once per channel, under the
// one shared mask. The channels are independent, so they run in
// parallel.
func BlendRGB(a, b *RGBImage, mask *pgrid.FloatGrid, c Config) (RGBImage, error) {
	out := RGBImage{}
	var grp errgroup.Group

	for i:=0; i<3; i++ {
		i := i
		grp.Go(func() error {
			blended, err := pyramid.Blend(&a[i], &b[i], mask, c.MaxLevels, c.FilterSizeImage, c.FilterSizeMask)
			if err != nil {
				return err
			}
			out[i] = blended
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return RGBImage{}, err
	}

	if c.Verbosity > 0 {
		logChannelHistograms(&out)
	}

	return out, nil
}

// logChannelHistograms dumps the value distribution of each blended
// channel, handy for spotting a blend that clipped hard at 0 or 1.
func logChannelHistograms(im *RGBImage) {
	names := []string{"R", "G", "B"}

	for c:=0; c<3; c++ {
		hist := histogram.Histogram{NumBuckets:16, ValMin:0, ValMax:256}
		for x:=0; x<im.Dx(); x++ {
			for y:=0; y<im.Dy(); y++ {
				hist.Add(histogram.ScalarVal(int(im[c].Get(x,y) * 255.0)))
			}
		}
		log.Printf("blended %s: %v\n", names[c], hist)
	}
}
