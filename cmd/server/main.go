package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/Flokey82/octasphere"
	"github.com/gorilla/mux"
)

// maxServedDepth limits the size of the meshes generated on request.
const maxServedDepth = 7

var (
	addr         string  = ":3333"
	scale        float64 = 250
	colorIndex   int     = octasphere.ManyColors
	textureURL   string  = ""
	uvLayoutSize int     = 1024
)

func init() {
	flag.StringVar(&addr, "addr", addr, "listen address")
	flag.Float64Var(&scale, "scale", scale, "uniform scale of the sphere")
	flag.IntVar(&colorIndex, "color", colorIndex, "color index of all triangles (-1 = one color per octant)")
	flag.StringVar(&textureURL, "texture", textureURL, "texture URL handed to the renderer")
	flag.IntVar(&uvLayoutSize, "uvlayout_size", uvLayoutSize, "size of the UV layout image in pixels")
}

// sphereCache holds one generated sphere per depth.
type sphereCache struct {
	mu      sync.Mutex
	spheres map[int]*octasphere.Sphere
}

var cache = &sphereCache{spheres: make(map[int]*octasphere.Sphere)}

func (c *sphereCache) get(depth int) (*octasphere.Sphere, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if sp, ok := c.spheres[depth]; ok {
		return sp, nil
	}
	cfg := octasphere.NewConfig()
	cfg.RecursionDepth = depth
	cfg.Scale = scale
	cfg.Color = colorIndex
	cfg.TextureURL = textureURL
	sp, err := octasphere.NewSphereFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	c.spheres[depth] = sp
	return sp, nil
}

func main() {
	flag.Parse()

	// Make sure the configuration is usable before we start serving.
	if _, err := cache.get(0); err != nil {
		log.Fatal(err)
	}

	// Start the server.
	router := mux.NewRouter()
	router.HandleFunc("/sphere/{depth:[0-9]+}", sphereHandler)
	router.HandleFunc("/sphere/{depth:[0-9]+}/stats", statsHandler)
	router.HandleFunc("/sphere/{depth:[0-9]+}/uvlayout.png", uvLayoutHandler)
	router.HandleFunc("/sphere/{depth:[0-9]+}/closest/{lat}/{lon}", closestHandler)
	router.HandleFunc("/sphere/{depth:[0-9]+}/bbox/{la1}/{lo1}/{la2}/{lo2}", boundingBoxHandler)
	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

func sphereFromRequest(w http.ResponseWriter, r *http.Request) *octasphere.Sphere {
	vars := mux.Vars(r)
	depth, err := strconv.Atoi(vars["depth"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	if depth > maxServedDepth {
		http.Error(w, fmt.Sprintf("depth %d exceeds %d", depth, maxServedDepth), http.StatusBadRequest)
		return nil
	}
	sp, err := cache.get(depth)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	return sp
}

func floatVars(w http.ResponseWriter, r *http.Request, names ...string) ([]float64, bool) {
	vars := mux.Vars(r)
	res := make([]float64, len(names))
	for i, name := range names {
		v, err := strconv.ParseFloat(vars[name], 64)
		if err != nil {
			http.Error(w, fmt.Sprintf("%s: %v", name, err), http.StatusBadRequest)
			return nil, false
		}
		res[i] = v
	}
	return res, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println(err)
	}
}

func sphereHandler(w http.ResponseWriter, r *http.Request) {
	sp := sphereFromRequest(w, r)
	if sp == nil {
		return
	}
	writeJSON(w, sp)
}

func statsHandler(w http.ResponseWriter, r *http.Request) {
	sp := sphereFromRequest(w, r)
	if sp == nil {
		return
	}
	writeJSON(w, sp.Stats())
}

func uvLayoutHandler(w http.ResponseWriter, r *http.Request) {
	sp := sphereFromRequest(w, r)
	if sp == nil {
		return
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, sp.UVLayoutImage(uvLayoutSize)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func closestHandler(w http.ResponseWriter, r *http.Request) {
	sp := sphereFromRequest(w, r)
	if sp == nil {
		return
	}
	ll, ok := floatVars(w, r, "lat", "lon")
	if !ok {
		return
	}
	t := sp.ClosestTriangle(ll[0], ll[1])
	if t < 0 {
		http.Error(w, "no triangle found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]interface{}{
		"triangle": t,
		"vertices": sp.Triangles[t],
		"uv":       sp.PolygonTextureCoord[t],
		"color":    sp.PolygonColors[t],
	})
}

func boundingBoxHandler(w http.ResponseWriter, r *http.Request) {
	sp := sphereFromRequest(w, r)
	if sp == nil {
		return
	}
	bb, ok := floatVars(w, r, "la1", "lo1", "la2", "lo2")
	if !ok {
		return
	}
	writeJSON(w, sp.TrianglesInBoundingBox(bb[0], bb[1], bb[2], bb[3]))
}
