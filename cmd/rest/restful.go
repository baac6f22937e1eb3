package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/viper"

	"github.com/jdevelop/placesmap/config"
	"github.com/jdevelop/placesmap/placemap"
	"github.com/jdevelop/placesmap/placesapi"
)

var (
	port   = flag.Int("port", 8080, "port to listen on")
	host   = flag.String("host", "localhost", "host to listen on")
	prefix = flag.String("prefix", "/api/", "url prefix, must end with /")
)

// parseRequest reads lat, lon and the optional radius, types and max query
// parameters, falling back to configured defaults.
func parseRequest(q url.Values, v *viper.Viper) (placesapi.SearchRequest, error) {
	req := placesapi.SearchRequest{
		Radius:         v.GetFloat64(config.SearchRadius),
		Types:          v.GetStringSlice(config.SearchTypes),
		MaxResultCount: v.GetInt(config.SearchMax),
	}
	var err error
	if req.Latitude, err = strconv.ParseFloat(q.Get("lat"), 64); err != nil {
		return req, fmt.Errorf("lat: %w", err)
	}
	if req.Longitude, err = strconv.ParseFloat(q.Get("lon"), 64); err != nil {
		return req, fmt.Errorf("lon: %w", err)
	}
	if s := q.Get("radius"); s != "" {
		if req.Radius, err = strconv.ParseFloat(s, 64); err != nil {
			return req, fmt.Errorf("radius: %w", err)
		}
	}
	if s := q.Get("max"); s != "" {
		if req.MaxResultCount, err = strconv.Atoi(s); err != nil {
			return req, fmt.Errorf("max: %w", err)
		}
	}
	if s := q.Get("types"); s != "" {
		req.Types = strings.Split(s, ",")
	}
	return req, req.Validate()
}

func newRouter(v *viper.Viper, searcher placemap.Searcher, prefix string) *httprouter.Router {
	build := func(w http.ResponseWriter, r *http.Request) (*placemap.Document, bool) {
		req, err := parseRequest(r.URL.Query(), v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		current := placemap.LatLng{Lat: req.Latitude, Lon: req.Longitude}
		doc, report, err := placemap.Build(r.Context(), searcher, req, current, time.Now().Weekday())
		if err != nil {
			log.Printf("build map failed: %v", err)
			if errors.Is(err, placesapi.ErrInvalidRequest) {
				http.Error(w, err.Error(), http.StatusBadRequest)
			} else {
				http.Error(w, "Can not fetch places", http.StatusBadGateway)
			}
			return nil, false
		}
		log.Printf("received %d places, %d markers, %d skipped", report.Received, report.Markers, report.Skipped)
		return doc, true
	}

	svc := httprouter.New()

	svc.GET(prefix+"map", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		doc, ok := build(w, r)
		if !ok {
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := doc.WriteHTML(w); err != nil {
			log.Printf("write html failed: %v", err)
		}
	})

	svc.GET(prefix+"export", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		doc, ok := build(w, r)
		if !ok {
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Disposition", "attachment; filename=places.kml")
		w.Header().Add("Content-Type", "application/vnd.google-earth.kml+xml")
		if err := placemap.WriteKML(doc, w); err != nil {
			log.Printf("write kml failed: %v", err)
		}
	})

	return svc
}

func main() {

	flag.Parse()

	v := viper.New()
	if err := config.Load(v); err != nil {
		log.Fatal(err)
	}

	client, err := config.NewClient(v)
	if err != nil {
		log.Fatal(err)
	}

	addr := fmt.Sprintf("%s:%d", *host, *port)
	log.Println("Started server on", addr)
	log.Fatal(http.ListenAndServe(addr, newRouter(v, client, *prefix)))

}
