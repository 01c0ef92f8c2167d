// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/meta"
	"github.com/tfctl/awsctl/internal/output"
)

const bashCompletionTemplate = `# bash completion for awsctl
_awsctl()
{
    local cur prev
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
    COMPREPLY=()

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "{{ .Services }} completion --help --version" -- "$cur") )
        return 0
    fi

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "{{ .Formats }}" -- "$cur") )
            return 0
            ;;
        --paging)
            COMPREPLY=( $(compgen -W "server capped" -- "$cur") )
            return 0
            ;;
        --confirm-preference)
            COMPREPLY=( $(compgen -W "low medium high none" -- "$cur") )
            return 0
            ;;
    esac

    if [[ ${COMP_CWORD} -eq 2 ]]; then
        case "${COMP_WORDS[1]}" in
{{- range .Tree }}
        {{ .Name }}) COMPREPLY=( $(compgen -W "{{ .Subcommands }}" -- "$cur") ) ;;
{{- end }}
        completion) COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") ) ;;
        esac
        return 0
    fi

    case "${COMP_WORDS[1]} ${COMP_WORDS[2]}" in
{{- range .Tree }}{{ $svc := .Name }}{{ range .Cmdlets }}
        "{{ $svc }} {{ .Name }}") COMPREPLY=( $(compgen -W "{{ .Flags }}" -- "$cur") ) ;;
{{- end }}{{ end }}
    esac
    return 0
}

complete -F _awsctl awsctl
`

const zshCompletionTemplate = `#compdef awsctl

_awsctl() {
  local -a services
  services=(
{{- range .Tree }}
    '{{ .Name }}:{{ .Usage }}'
{{- end }}
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'awsctl services' services
    return
  fi

  local -a cmdlets
  case $words[2] in
{{- range .Tree }}
    {{ .Name }})
      cmdlets=(
{{- range .Cmdlets }}
        '{{ .Name }}:{{ .Usage }}'
{{- end }}
      )
      ;;
{{- end }}
    completion)
      _arguments '1: :((bash zsh))'
      return
      ;;
  esac

  if (( CURRENT == 3 )); then
    _describe -t commands 'cmdlets' cmdlets
    return
  fi

  case "$words[2] $words[3]" in
{{- range .Tree }}{{ $svc := .Name }}{{ range .Cmdlets }}
    "{{ $svc }} {{ .Name }}") compadd -- {{ .Flags }} ;;
{{- end }}{{ end }}
  esac
}

if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _awsctl awsctl
`

type completionCmdlet struct {
	Name  string
	Usage string
	Flags string
}

type completionService struct {
	Name        string
	Usage       string
	Subcommands string
	Cmdlets     []completionCmdlet
}

type completionData struct {
	Services string
	Formats  string
	Tree     []completionService
}

// completionTree walks the service commands under root.
func completionTree(root *cli.Command) completionData {
	var data completionData
	var names []string

	for _, svc := range root.Commands {
		if len(svc.Commands) == 0 {
			continue
		}
		names = append(names, svc.Name)

		cs := completionService{Name: svc.Name, Usage: svc.Usage}
		var subs []string
		for _, sub := range svc.Commands {
			subs = append(subs, sub.Name)
			cs.Cmdlets = append(cs.Cmdlets, completionCmdlet{
				Name:  sub.Name,
				Usage: strings.ReplaceAll(sub.Usage, "'", ""),
				Flags: strings.Join(flagWords(sub.Flags), " "),
			})
		}
		cs.Subcommands = strings.Join(subs, " ")
		data.Tree = append(data.Tree, cs)
	}

	data.Services = strings.Join(names, " ")
	data.Formats = strings.Join(output.Formats, " ")
	return data
}

// flagWords renders every flag name the way it is typed.
func flagWords(flags []cli.Flag) []string {
	var words []string
	for _, f := range flags {
		for _, n := range f.Names() {
			if len(n) == 1 {
				words = append(words, "-"+n)
			} else {
				words = append(words, "--"+n)
			}
		}
	}
	return words
}

func writeCompletion(w io.Writer, shell string, root *cli.Command) error {
	var text string
	switch shell {
	case "bash":
		text = bashCompletionTemplate
	case "zsh":
		text = zshCompletionTemplate
	default:
		return fmt.Errorf("unsupported shell %q: must be bash or zsh", shell)
	}

	tmpl, err := template.New(shell).Parse(text)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, completionTree(root))
}

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}

	if shell == "" {
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		default:
			fmt.Fprintln(os.Stderr, "usage: awsctl completion [bash|zsh]")
			return nil
		}
	}

	w := writer(cmd)
	if w == nil {
		w = os.Stdout
	}
	return writeCompletion(w, shell, cmd.Root())
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "awsctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
