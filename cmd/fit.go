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
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mannixp/D.stratify-pdfe/InputParameters"
	"github.com/mannixp/D.stratify-pdfe/numdf"
	"github.com/mannixp/D.stratify-pdfe/utils"
)

type FitModel struct {
	ICFile       string
	Points       []float64 // override the case file points when not empty
	RoundTrip    bool
	PerfCounters bool
	Threads      int
	Logger       *slog.Logger
}

// FitCmd represents the fit command
var FitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit the CDF, QDF and PDF of the transform in a case file",
	Long: `
Fits the distribution of the transform described by a YAML case file and
prints the CDF, quantile function and PDF at the evaluation points,

numdf fit -I case.yaml --points 0.1,0.5,0.9 --roundTrip`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		fm := &FitModel{
			Threads: viper.GetInt("threads"),
			Logger:  slog.Default(),
		}
		if fm.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		var points []string
		if points, err = cmd.Flags().GetStringSlice("points"); err != nil {
			return
		}
		if fm.Points, err = parsePoints(points); err != nil {
			return
		}
		fm.RoundTrip, _ = cmd.Flags().GetBool("roundTrip")
		fm.PerfCounters, _ = cmd.Flags().GetBool("perfCounters")
		_, err = RunFit(cmd.OutOrStdout(), fm)
		return
	},
}

func init() {
	rootCmd.AddCommand(FitCmd)
	FitCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML case file with the domain, range, elements and transform")
	FitCmd.Flags().StringSliceP("points", "p", nil, "evaluation points, replacing those of the case file")
	FitCmd.Flags().Bool("roundTrip", false, "report int (Q(F(y)) - y) dy")
	FitCmd.Flags().Bool("perfCounters", false, "report CPU cycles and instructions of the fit (linux)")
}

func parsePoints(fields []string) (points []float64, err error) {
	points = make([]float64, len(fields))
	for i, f := range fields {
		if points[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, fmt.Errorf("points: %w", err)
		}
	}
	return
}

func processInput(fm *FitModel) (ip *InputParameters.FitParameters, err error) {
	var data []byte
	if len(fm.ICFile) == 0 {
		exampleFile := `
########################################
Title: "Quadratic"
Domain:
  - {Name: x1, Min: 0, Max: 1}
Range: [0, 1]
Elements: 50
QuadratureDegree: 200
Transform: x1*x1
Samples: 11
########################################
`
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile), for example:%s", exampleFile)
		return
	}
	if data, err = os.ReadFile(fm.ICFile); err != nil {
		return
	}
	ip = &InputParameters.FitParameters{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("%s: %w", fm.ICFile, err)
	}
	return
}

// RunFit fits the case in fm.ICFile and writes a report to w
func RunFit(w io.Writer, fm *FitModel) (d *numdf.Density, err error) {
	var (
		ip     *InputParameters.FitParameters
		p      *numdf.Ptp
		points []float64
		fitErr error
		logger = fm.Logger
	)
	if logger == nil {
		logger = slog.Default()
	}
	if ip, err = processInput(fm); err != nil {
		return
	}
	ip.Print(w)
	Y, err := ip.Expression()
	if err != nil {
		return
	}
	if points = fm.Points; len(points) == 0 {
		if points, err = ip.EvaluationPoints(); err != nil {
			return
		}
	}
	if p, err = numdf.NewPtp(ip.PhysicalDomain(), ip.ProbabilityRange(), ip.Elements,
		numdf.WithThreads(fm.Threads), numdf.WithLogger(logger)); err != nil {
		return
	}
	degree := ip.QuadratureDegree
	if degree <= 0 {
		degree = numdf.DefaultQuadratureDegree
	}

	fit := func() error {
		d, fitErr = p.Fit(Y, degree)
		return fitErr
	}
	if fm.PerfCounters {
		counters, perr := countFit(fit)
		if fitErr != nil {
			return nil, fitErr
		}
		if perr != nil {
			logger.Warn("performance counters unavailable", "err", perr)
		}
		for _, c := range counters {
			fmt.Fprintf(w, "%d\t\t= %s\n", c.Value, c.Name)
		}
	}
	if d == nil {
		if err = fit(); err != nil {
			return
		}
	}

	logger.Debug("fit complete", "elements", ip.Elements, "memory", utils.GetMemUsage())

	cdfMass, pdfMass := d.Mass()
	fmt.Fprintf(w, "%10.6f\t\t= F(hi) - F(lo)\n", cdfMass)
	fmt.Fprintf(w, "%10.6f\t\t= int f dy\n", pdfMass)
	fmt.Fprintf(w, "[%d, %v]\t\t= Limiter iterations, converged\n", d.Limiter.Iterations, d.Limiter.Converged)
	if fm.RoundTrip {
		var residual float64
		if residual, err = d.RoundTrip(degree); err != nil {
			return
		}
		fmt.Fprintf(w, "%10.3e\t\t= int (Q(F(y)) - y) dy\n", residual)
	}
	if len(points) == 0 {
		return
	}
	cdf, qdf, pdf, y, err := d.Evaluate(points)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "%12s %12s %12s %12s\n", "y", "F(y)", "Q(y)", "f(y)")
	for i := range y {
		fmt.Fprintf(w, "%12.6f %12.6f %12.6f %12.6f\n", y[i], cdf[i], qdf[i], pdf[i])
	}
	return
}
