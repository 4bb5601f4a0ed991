package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-numrs/dsp/conv"
)

const (
	backendDirect = "direct"
	backendFFT    = "fft"
)

// job describes one convolution run. It can be loaded from a YAML file and
// is then overridden by flags set on the command line.
type job struct {
	Signal  []float64 `yaml:"signal"`
	Kernel  []float64 `yaml:"kernel"`
	Mode    string    `yaml:"mode"`
	Backend string    `yaml:"backend"`
	Repeat  int       `yaml:"repeat"`
}

func loadJob(path string) (job, error) {
	var j job

	data, err := os.ReadFile(path)
	if err != nil {
		return j, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &j); err != nil {
		return j, fmt.Errorf("parse config %s: %w", path, err)
	}
	return j, nil
}

// validate fills defaults and checks the fields that the conv package does
// not check itself.
func (j *job) validate() (conv.Mode, error) {
	if j.Backend == "" {
		j.Backend = backendDirect
	}
	if j.Backend != backendDirect && j.Backend != backendFFT {
		return 0, fmt.Errorf("unknown backend %q, expected %s or %s", j.Backend, backendDirect, backendFFT)
	}
	if j.Repeat <= 0 {
		j.Repeat = 1
	}
	if j.Mode == "" {
		return 0, fmt.Errorf("mode is required (full, same or valid)")
	}
	return conv.ParseMode(j.Mode)
}

// parseNumbers parses a comma- or space-separated list of floats.
func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out = append(out, x)
	}
	return out, nil
}

// parseInts parses a comma- or space-separated list of integers.
func parseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		out = append(out, x)
	}
	return out, nil
}
