package main

import (
	"flag"
	"log"
	"math"
	"os"
	"runtime/pprof"

	"github.com/Flokey82/octasphere"
)

var (
	recursionDepth = flag.Int("depth", 3, "number of times each octahedron face is split into four")
	scale          = flag.Float64("scale", 250, "radius of the generated sphere")
	colorIndex     = flag.Int("color", 9, "palette index for every triangle, -1 colors by octant")
	textureURL     = flag.String("texture", "", "texture URL stored with the sphere")
	uvLayout       = flag.String("uvlayout", "", "render the texture coordinates into this PNG")
	uvLayoutSize   = flag.Int("uvlayout_size", 1024, "edge length of the UV layout PNG")
	lookupLat      = flag.Float64("lat", math.NaN(), "latitude of a triangle lookup (needs -lon)")
	lookupLon      = flag.Float64("lon", math.NaN(), "longitude of a triangle lookup (needs -lat)")
	cpuProfile     = flag.String("cpuprofile", "", "write a CPU profile of the generation to this file")
	memProfile     = flag.String("memprofile", "", "write a heap profile after generation to this file")
)

func main() {
	flag.Parse()
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	cfg := octasphere.NewConfig()
	cfg.RecursionDepth = *recursionDepth
	cfg.Scale = *scale
	cfg.Color = *colorIndex
	cfg.TextureURL = *textureURL

	sp, err := octasphere.NewSphereFromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	sp.LogStats()

	if !math.IsNaN(*lookupLat) && !math.IsNaN(*lookupLon) {
		if t := sp.ClosestTriangle(*lookupLat, *lookupLon); t >= 0 {
			log.Printf("closest triangle to %.3f, %.3f: %d (texcoords %v)", *lookupLat, *lookupLon, t, sp.PolygonTextureCoord[t])
		}
	}

	if *uvLayout != "" {
		if err := sp.ExportUVLayoutPNG(*uvLayout, *uvLayoutSize); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote UV layout to %s", *uvLayout)
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}
