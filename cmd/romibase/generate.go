package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chassiskit/romibase/romi"
	"github.com/chassiskit/romibase/scad"
)

// defaultHeight is the Romi base plate thickness in millimeters.
const defaultHeight = 9.6

func newGenerateCommand() *cobra.Command {
	outDir := "."
	height := defaultHeight

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the base plate and write scad/csv/html artifacts",
		RunE: func(_ *cobra.Command, _ []string) error {
			return generate(outDir, height)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", outDir, "output directory")
	cmd.Flags().Float64Var(&height, "height", height, "extrusion height in millimeters")
	return cmd
}

func generate(outDir string, height float64) error {
	base := romi.NewBase(romi.DefaultOptions())
	composite, err := base.Assemble()
	if err != nil {
		return errors.Wrap(err, "assemble base")
	}
	keys := composite.Keys()
	logrus.WithFields(logrus.Fields{
		"features": len(keys),
		"outline":  composite.Shape(0).Name(),
	}).Info("base assembled")

	artifacts := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"romi_base_dxf.scad", func(w io.Writer) error {
			return scad.WritePolygon(w, composite)
		}},
		{"romi_base.scad", func(w io.Writer) error {
			return scad.WriteExtruded(w, composite, height)
		}},
		{"romi_base.csv", func(w io.Writer) error {
			return scad.WriteKeysCSV(w, keys)
		}},
		{"romi_base.html", func(w io.Writer) error {
			return scad.WriteKeysHTML(w, keys, "Romi Base Holes and Rectangles")
		}},
	}
	for _, artifact := range artifacts {
		path := filepath.Join(outDir, artifact.name)
		if err := writeFile(path, artifact.write); err != nil {
			return err
		}
		logrus.WithField("path", path).Info("artifact written")
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "close %s", path)
}
