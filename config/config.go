package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/jdevelop/placesmap/placesapi"
)

const (
	PlacesKeyFile   = "places.key.file"
	PlacesEndpoint  = "places.endpoint"
	PlacesDebugFile = "places.debug.file"
	SearchRadius    = "search.radius"
	SearchTypes     = "search.types"
	SearchMax       = "search.max"
	MapOutput       = "map.output"
)

// Load reads $HOME/.placesmap/config or ./config when present and applies
// PLACESMAP_ environment overrides. A missing config file is fine.
func Load(v *viper.Viper) error {
	v.SetDefault(PlacesKeyFile, placesapi.DefaultKeyFile)
	v.SetDefault(PlacesEndpoint, placesapi.DefaultEndpoint)
	v.SetDefault(PlacesDebugFile, placesapi.DefaultDebugFile)
	v.SetDefault(SearchRadius, 2000)
	v.SetDefault(SearchTypes, []string{"chinese_restaurant"})
	v.SetDefault(SearchMax, 20)
	v.SetDefault(MapOutput, "map.html")

	v.SetEnvPrefix("PLACESMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.AddConfigPath("$HOME/.placesmap")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// NewClient loads the API key and builds a places client from settings.
func NewClient(v *viper.Viper) (*placesapi.Client, error) {
	key, err := placesapi.LoadKey(v.GetString(PlacesKeyFile))
	if err != nil {
		return nil, err
	}
	return placesapi.NewClient(key,
		placesapi.WithEndpoint(v.GetString(PlacesEndpoint)),
		placesapi.WithDebugFile(v.GetString(PlacesDebugFile)),
	), nil
}
