package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdevelop/placesmap/config"
	"github.com/jdevelop/placesmap/placemap"
	"github.com/jdevelop/placesmap/placesapi"
)

const (
	flagCached = "cached"
	flagKML    = "kml"
)

func writeFile(path string, write func(*os.File) error) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Sync(); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	req := placesapi.SearchRequest{
		Latitude:       lat,
		Longitude:      lon,
		Radius:         v.GetFloat64(config.SearchRadius),
		Types:          v.GetStringSlice(config.SearchTypes),
		MaxResultCount: v.GetInt(config.SearchMax),
	}
	current := placemap.LatLng{Lat: lat, Lon: lon}
	weekday := time.Now().Weekday()

	var (
		doc    *placemap.Document
		report placemap.Report
	)
	if cached, _ := cmd.Flags().GetString(flagCached); cached != "" {
		places, err := placesapi.LoadCached(cached)
		if err != nil {
			return err
		}
		log.Printf("loaded %d places from %s", len(places), cached)
		doc, report = placemap.Compose(places, current, current, weekday)
	} else {
		client, err := config.NewClient(v)
		if err != nil {
			return err
		}
		doc, report, err = placemap.Build(context.Background(), client, req, current, weekday)
		if err != nil {
			return err
		}
	}
	log.Printf("received %d places, %d markers, %d skipped", report.Received, report.Markers, report.Skipped)

	out := v.GetString(config.MapOutput)
	if err := writeFile(out, func(f *os.File) error { return doc.WriteHTML(f) }); err != nil {
		return err
	}
	log.Println("map written to", out)

	if kmlOut, _ := cmd.Flags().GetString(flagKML); kmlOut != "" {
		if err := writeFile(kmlOut, func(f *os.File) error { return placemap.WriteKML(doc, f) }); err != nil {
			return err
		}
		log.Println("kml written to", kmlOut)
	}
	return nil
}

func main() {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "placesmap",
		Short: "Render nearby restaurants as an interactive map",
		Long:  "placesmap searches the places API around a coordinate and writes a standalone HTML map with rated markers and detail popups.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.Float64("lat", 53.41058, "latitude of the search origin and current location")
	flags.Float64("lon", -2.97794, "longitude of the search origin and current location")
	flags.Float64("radius", 2000, "search radius in meters (0-50000)")
	flags.StringSlice("types", []string{"chinese_restaurant"}, "place types to include")
	flags.Int("max", 20, "maximum number of results (1-20)")
	flags.StringP("output", "o", "map.html", "HTML output file")
	flags.String("key-file", placesapi.DefaultKeyFile, "file holding the API key")
	flags.String("debug-file", placesapi.DefaultDebugFile, "where the raw API response is saved")
	flags.String(flagCached, "", "render a previously saved debug file instead of calling the API")
	flags.String(flagKML, "", "also export markers as KML to this file")

	v.BindPFlag(config.SearchRadius, flags.Lookup("radius"))
	v.BindPFlag(config.SearchTypes, flags.Lookup("types"))
	v.BindPFlag(config.SearchMax, flags.Lookup("max"))
	v.BindPFlag(config.MapOutput, flags.Lookup("output"))
	v.BindPFlag(config.PlacesKeyFile, flags.Lookup("key-file"))
	v.BindPFlag(config.PlacesDebugFile, flags.Lookup("debug-file"))

	if err := config.Load(v); err != nil {
		log.Fatal(err)
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
