/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "numdf",
	Short: "Finite element CDF, quantile function and PDF of a transformed variable",
	Long: `
Computes the distribution of Y(X), with X uniformly distributed over a one or
two dimensional physical domain, by projecting an indicator function onto a
tensor product finite element space.

numdf fit -I case.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		var logger *slog.Logger
		if logger, err = newLogger(os.Stderr, viper.GetString("logLevel")); err != nil {
			return
		}
		slog.SetDefault(logger)
		profiler, err = startProfile(viper.GetString("profile"))
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.numdf.yaml)")
	rootCmd.PersistentFlags().Int("threads", 1, "goroutines used to assemble the indicator projection")
	rootCmd.PersistentFlags().String("logLevel", "info", "one of debug, info, warn, error")
	rootCmd.PersistentFlags().String("profile", "", "write a cpu or mem profile to the working directory")
	for _, name := range []string{"threads", "logLevel", "profile"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".numdf")
	}
	viper.SetEnvPrefix("NUMDF")
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger(w io.Writer, level string) (logger *slog.Logger, err error) {
	var lvl slog.Level
	if err = lvl.UnmarshalText([]byte(level)); err != nil {
		err = fmt.Errorf("logLevel: %w", err)
		return
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	return
}

func startProfile(kind string) (p interface{ Stop() }, err error) {
	switch kind {
	case "":
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		err = fmt.Errorf("unknown profile %q, want cpu or mem", kind)
	}
	return
}
