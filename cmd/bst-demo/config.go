package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "bst"

type config struct {
	Seed     int64
	Size     int
	Max      int
	Extra    int
	LogLevel logrus.Level
}

// bindConfig declares the persistent flags of cmd and binds them to a viper
// instance that also reads BST_* environment variables. Flags win over the
// environment, which wins over the defaults.
func bindConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	// all environment variables start with BST_ and are set by
	// replacing `.` and `-` with _.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	f := cmd.PersistentFlags()
	f.Int64("seed", 1, "seed of the random generator")
	f.Int("size", 15, "number of random values to build the tree from")
	f.Int("max", 100, "random values are drawn from [0, max)")
	f.Int("extra", 5, "number of values above max inserted to unbalance the tree")
	f.String("log-level", "info", "logrus level: panic, fatal, error, warn, info, debug or trace")

	if err := v.BindPFlags(f); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (config, error) {
	c := config{
		Seed:  v.GetInt64("seed"),
		Size:  v.GetInt("size"),
		Max:   v.GetInt("max"),
		Extra: v.GetInt("extra"),
	}
	lvl, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return c, err
	}
	c.LogLevel = lvl
	switch {
	case c.Size < 0:
		return c, fmt.Errorf("size must not be negative, got %d", c.Size)
	case c.Max <= 0:
		return c, fmt.Errorf("max must be positive, got %d", c.Max)
	case c.Extra < 0:
		return c, fmt.Errorf("extra must not be negative, got %d", c.Extra)
	}
	return c, nil
}
