package main

import (
	"github.com/spf13/pflag"

	"github.com/charlie0129/schmitt/pkg/client"
	"github.com/charlie0129/schmitt/pkg/config"
	"github.com/charlie0129/schmitt/pkg/design"
	"github.com/charlie0129/schmitt/pkg/spec"
)

// specFlags are the design inputs accepted on the command line. Only flags
// the user sets override the config file.
type specFlags struct {
	vcc       float64
	low       float64
	high      float64
	tolerance float64
	scales    []float64
	workers   int
}

func (f *specFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.vcc, "vcc", 0, "supply voltage in volts")
	fs.Float64Var(&f.low, "low", 0, "low threshold target in volts")
	fs.Float64Var(&f.high, "high", 0, "high threshold target in volts")
	fs.Float64Var(&f.tolerance, "tolerance", 0, "resistor tolerance in percent (5, 1 or 0.1)")
	fs.Float64SliceVar(&f.scales, "scales", nil, "decade multipliers applied to the E24 series, e.g. 100,1000,10000,100000")
	fs.IntVar(&f.workers, "workers", 0, "number of goroutines sharing the search (0 or 1 searches sequentially)")
}

// request turns the flags that were set into design overrides.
func (f *specFlags) request(fs *pflag.FlagSet) design.Request {
	var req design.Request
	if fs.Changed("vcc") {
		req.VCC = &f.vcc
	}
	if fs.Changed("low") {
		req.LowTarget = &f.low
	}
	if fs.Changed("high") {
		req.HighTarget = &f.high
	}
	if fs.Changed("tolerance") {
		req.TolerancePercent = &f.tolerance
	}
	if fs.Changed("scales") {
		req.Scales = f.scales
	}
	if fs.Changed("workers") {
		req.Workers = &f.workers
	}
	return req
}

// localInputs resolves req against the config file.
func localInputs(req design.Request) (spec.Spec, design.Options, error) {
	conf, err := config.NewFile(configPath)
	if err != nil {
		return spec.Spec{}, design.Options{}, err
	}

	s, opts := req.Resolve(conf.Spec(), design.Options{
		Scales:  conf.Scales(),
		Workers: conf.Workers(),
	})
	return s, opts, nil
}

func newAPIClient() *client.Client {
	return client.NewClient(unixSocketPath)
}
