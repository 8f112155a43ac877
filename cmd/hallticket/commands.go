// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"

	"github.com/kennethjason07/hallticket-gndecb/archive"
	"github.com/kennethjason07/hallticket-gndecb/logo"
	"github.com/kennethjason07/hallticket-gndecb/models"
	"github.com/kennethjason07/hallticket-gndecb/pipeline"
	"github.com/kennethjason07/hallticket-gndecb/render"
	"github.com/kennethjason07/hallticket-gndecb/roster"
)

type generateOptions struct {
	output      string
	dept        string
	exam        string
	semester    string
	logoPath    string
	institution string
	subjects    []string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hallticket",
		Short: "Generate examination hall tickets from a student roster",
		Long: `hallticket lays out three admission tickets per A4 page from an
.xlsx or .csv roster and packs one PDF per page into a zip archive.`,
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd(), newInspectCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [roster.xlsx]",
		Short: "Write a zip of hall ticket PDFs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", archive.Filename, "Output archive path")
	cmd.Flags().StringVar(&opts.dept, "dept", "", "Department name")
	cmd.Flags().StringVar(&opts.exam, "exam", "", "Examination name")
	cmd.Flags().StringVar(&opts.semester, "semester", "", "Semester")
	cmd.Flags().StringVar(&opts.logoPath, "logo", "", "Logo image (bundled logo if empty)")
	cmd.Flags().StringVar(&opts.institution, "institution", models.DefaultInstitution, "Institution heading")
	cmd.Flags().StringSliceVar(&opts.subjects, "subjects", nil, "Subjects printed on every ticket instead of the roster's, comma separated")

	return cmd
}

func runGenerate(ctx context.Context, out io.Writer, rosterPath string, opts generateOptions) error {
	data, err := os.ReadFile(rosterPath)
	if err != nil {
		return fmt.Errorf("failed to read roster: %w", err)
	}
	records, err := roster.Read(data)
	if err != nil {
		return fmt.Errorf("failed to parse roster: %w", err)
	}

	defaultLogo := logo.Default()
	if opts.logoPath != "" {
		defaultLogo, err = logo.LoadFile(opts.logoPath)
		if err != nil {
			return err
		}
	}

	gen := &pipeline.Generator{
		Renderer:    render.PDF{Creator: "hallticket"},
		Institution: opts.institution,
		DefaultLogo: defaultLogo,
	}
	cfg, err := gen.Config(pipeline.Form{
		DeptName: opts.dept,
		ExamName: opts.exam,
		Semester: opts.semester,
	})
	if err != nil {
		return err
	}
	if len(opts.subjects) > 0 {
		cfg.SubjectMode = models.SubjectsManual
		cfg.CustomSubjects = opts.subjects
	}

	// Build next to the destination and rename so a failed run leaves no partial archive
	tmp, err := os.CreateTemp(filepath.Dir(opts.output), ".halltickets-*.zip")
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	res, err := gen.Generate(ctx, records, cfg, archive.NewWriter(tmp))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	if err := os.Rename(tmp.Name(), opts.output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(out, "%s: %d tickets on %d pages (%s)\n",
		opts.output, res.Records, res.Pages, humanize.Bytes(uint64(res.Bytes)))
	return nil
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [halltickets.zip]",
		Short: "List the PDFs in an archive with their page counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), args[0])
		},
	}
}

func runInspect(out io.Writer, path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer zr.Close()

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTRY\tPAGES\tSIZE")

	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f.Name, err)
		}

		pages, err := api.PageCount(bytes.NewReader(data), nil)
		if err != nil {
			return fmt.Errorf("invalid PDF %s: %w", f.Name, err)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", f.Name, pages, humanize.Bytes(uint64(len(data))))
	}

	fmt.Fprintf(tw, "%d entries\t\t\n", len(zr.File))
	return tw.Flush()
}
