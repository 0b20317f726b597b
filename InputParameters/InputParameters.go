package InputParameters

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/mannixp/D.stratify-pdfe/expr"
	"github.com/mannixp/D.stratify-pdfe/numdf"
)

type Axis struct {
	Name string  `json:"Name"`
	Min  float64 `json:"Min"`
	Max  float64 `json:"Max"`
}

// Parameters obtained from the YAML case file
type FitParameters struct {
	Title            string     `json:"Title"`
	Domain           []Axis     `json:"Domain"`
	Range            [2]float64 `json:"Range"`
	Elements         int        `json:"Elements"`
	QuadratureDegree int        `json:"QuadratureDegree"` // zero selects the library default
	Transform        string     `json:"Transform"`        // e.g. "x1*x1" or "cos(x1)"
	Points           []float64  `json:"Points"`           // evaluation points, take precedence over Samples
	Samples          int        `json:"Samples"`
}

func (ip *FitParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return fmt.Errorf("parsing case file: %w", err)
	}
	return ip.Validate()
}

func (ip *FitParameters) Validate() error {
	switch {
	case len(ip.Domain) == 0:
		return fmt.Errorf("case file: at least one Domain axis is required")
	case ip.Elements < 1:
		return fmt.Errorf("case file: Elements must be positive, have %d", ip.Elements)
	case strings.TrimSpace(ip.Transform) == "":
		return fmt.Errorf("case file: Transform is required")
	case ip.Samples < 0:
		return fmt.Errorf("case file: Samples must not be negative, have %d", ip.Samples)
	}
	return nil
}

func (ip *FitParameters) PhysicalDomain() (domain numdf.PhysicalDomain) {
	domain = make(numdf.PhysicalDomain, len(ip.Domain))
	for i, ax := range ip.Domain {
		domain[i] = numdf.Axis{Name: ax.Name, Min: ax.Min, Max: ax.Max}
	}
	return
}

func (ip *FitParameters) ProbabilityRange() numdf.ProbabilityRange {
	return numdf.ProbabilityRange{Min: ip.Range[0], Max: ip.Range[1]}
}

// Expression parses Transform with the axis names as coordinates
func (ip *FitParameters) Expression() (e expr.Expr, err error) {
	names := make([]string, len(ip.Domain))
	for i, ax := range ip.Domain {
		names[i] = ax.Name
	}
	if e, err = expr.Parse(ip.Transform, names...); err != nil {
		err = fmt.Errorf("case file Transform: %w", err)
	}
	return
}

// EvaluationPoints returns Points when given, otherwise Samples equispaced
// points over the part of the probability range inside [0,1], where the
// CDF, QDF and PDF are all defined.
func (ip *FitParameters) EvaluationPoints() (points []float64, err error) {
	if len(ip.Points) != 0 {
		points = append(points, ip.Points...)
		return
	}
	if ip.Samples == 0 {
		return
	}
	lo, hi := math.Max(ip.Range[0], 0), math.Min(ip.Range[1], 1)
	if lo > hi {
		err = fmt.Errorf("case file: range [%g, %g] does not meet [0, 1], supply Points instead of Samples",
			ip.Range[0], ip.Range[1])
		return
	}
	points = make([]float64, ip.Samples)
	if ip.Samples == 1 {
		points[0] = 0.5 * (lo + hi)
		return
	}
	for i := range points {
		points[i] = lo + (hi-lo)*float64(i)/float64(ip.Samples-1)
	}
	points[ip.Samples-1] = hi
	return
}

func (ip *FitParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	for _, ax := range ip.Domain {
		fmt.Fprintf(w, "[%g, %g]\t\t= Axis %s\n", ax.Min, ax.Max, ax.Name)
	}
	fmt.Fprintf(w, "[%g, %g]\t\t= Probability Range\n", ip.Range[0], ip.Range[1])
	fmt.Fprintf(w, "[%d]\t\t\t= Elements\n", ip.Elements)
	fmt.Fprintf(w, "[%d]\t\t\t= Quadrature Degree\n", ip.QuadratureDegree)
	fmt.Fprintf(w, "[%s]\t\t= Transform\n", ip.Transform)
}
