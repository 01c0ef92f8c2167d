// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen writes markdown and man pages for every awsctl cmdlet by
// walking the command tree.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/command"
)

type Subcommand struct {
	ID          string
	Path        string
	Short       string
	Description string
	Usage       string
	Flags       []Flag
}

type Flag struct {
	ID          string
	Syntax      string
	Description string
	Default     string
}

type TemplateData struct {
	Subcommand
	Date    string
	Version string
	IDUpper string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

const markdownTemplate = `# awsctl {{ .Path }}

{{ .Short }}

## Usage

    {{ .Usage }}

{{ .Description }}

## Flags

| Flag | Description | Default |
|---|---|---|
{{- range .Flags }}
| ` + "`{{ .Syntax }}`" + ` | {{ .Description }} | {{ .Default }} |
{{- end }}

_Generated {{ .Date }} for version {{ .Version }}._
`

const manTemplate = `.TH {{ .IDUpper }} 1 "{{ .Date }}" "awsctl {{ .Version }}" "awsctl manual"
.SH NAME
awsctl-{{ .ID }} \- {{ .Short }}
.SH SYNOPSIS
{{ .Usage }}
.SH DESCRIPTION
{{ .Description }}
.SH OPTIONS
{{- range .Flags }}
.TP
.B {{ .Syntax }}
{{ .Description }}{{ if .Default }} (default: {{ .Default }}){{ end }}
{{- end }}
`

func main() {
	docs := "docs"
	if len(os.Args) > 1 {
		docs = os.Args[1]
	}

	app, err := command.InitApp(context.Background(), []string{"awsctl"})
	if err != nil {
		panic(err)
	}

	types := []Outputs{
		{Template: markdownTemplate, Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: manTemplate, Folder: filepath.Join(docs, "man", "share", "man1"), Prefix: "awsctl-", Suffix: ".1"},
	}

	version := getVersion()
	for _, sub := range subcommands(app) {
		metadata := TemplateData{
			Subcommand: sub,
			Date:       time.Now().Format("January 2, 2006"),
			Version:    version,
			IDUpper:    strcase.ToScreamingKebab(sub.ID),
		}

		for _, t := range types {
			if err := os.MkdirAll(t.Folder, 0o755); err != nil {
				panic(err)
			}

			path := filepath.Join(t.Folder, t.Prefix+sub.ID+t.Suffix)
			fmt.Println("Generating", path)
			if err := render(path, t.Template, metadata); err != nil {
				panic(err)
			}
		}
	}
}

// subcommands flattens the service/cmdlet tree. Flags arrive sorted.
func subcommands(app *cli.Command) []Subcommand {
	var subs []Subcommand
	for _, svc := range app.Commands {
		for _, cmd := range svc.Commands {
			sub := Subcommand{
				ID:          strcase.ToKebab(svc.Name + " " + cmd.Name),
				Path:        svc.Name + " " + cmd.Name,
				Short:       cmd.Usage,
				Description: cmd.Description,
				Usage:       cmd.UsageText,
			}
			for _, f := range cmd.Flags {
				sub.Flags = append(sub.Flags, docFlag(f))
			}
			subs = append(subs, sub)
		}
	}
	return subs
}

func docFlag(f cli.Flag) Flag {
	var syntax []string
	for _, n := range f.Names() {
		if len(n) == 1 {
			syntax = append(syntax, "-"+n)
		} else {
			syntax = append(syntax, "--"+n)
		}
	}

	out := Flag{ID: f.Names()[0]}
	if df, ok := f.(cli.DocGenerationFlag); ok {
		out.Description = df.GetUsage()
		out.Default = df.GetDefaultText()
		if df.TakesValue() {
			syntax[len(syntax)-1] += " <value>"
		}
	}
	out.Syntax = strings.Join(syntax, ", ")
	return out
}

func render(path, text string, data TemplateData) error {
	tmpl, err := template.New(filepath.Base(path)).Parse(text)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return tmpl.Execute(file, data)
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
