package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/stagebuild/internal/meta"
)

const bashCompletionScript = `# bash completion for stagebuild
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_stagebuild()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "run plan completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--context --repo -r --stage -s --tool"

    case "$prev" in
        --stage|-s)
            COMPREPLY=( $(compgen -W "base-deps project-builder dependencies build runner" -- "$cur") )
            return 0
            ;;
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --context)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
    esac

    case "$cmd" in
        run)
            local opts="$common --dry-run -n"
            ;;
        plan)
            local opts="$common --color -c --no-color --output -o --titles -t --no-titles"
            ;;
        completion)
            local opts="bash zsh"
            ;;
        *)
            local opts="$common"
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _stagebuild stagebuild
`

const zshCompletionScript = `#compdef stagebuild

_stagebuild() {
  local -a cmds
  cmds=(
    'run:build every stage in order'
    'plan:show the stages and build commands'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '--context[build context directory]:directory:_directories'
  '(-r --repo)'{-r,--repo}'[image repository]:repo'
  '*'{-s,--stage}'[only the named stage]:stage:(base-deps project-builder dependencies build runner)'
  '--tool[container build tool]:tool:(docker podman nerdctl)'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'stagebuild commands' cmds
    return
  fi

  case $words[2] in
    run)
      _arguments -C \
        $common \
        '(-n --dry-run)'{-n,--dry-run}'[print commands only]'
      ;;
    plan)
      _arguments -C \
        $common \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
        '(-t --titles)'{-t,--titles}'[show titles]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _stagebuild stagebuild
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := Writer(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			shell = "zsh"
		} else if strings.HasSuffix(sh, "bash") {
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: stagebuild completion [bash|zsh]")
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "stagebuild completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
