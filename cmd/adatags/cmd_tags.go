package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adatags/adatags/adatags"
	"github.com/adatags/adatags/format"
)

func newTagsCmd() *cobra.Command {
	var outputFormat string
	var fileScope bool
	var qualifiedTags bool
	var kinds string

	cmd := &cobra.Command{
		Use:   "tags <path>",
		Short: "Extract tags from an Ada source file or a directory of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			opts := []adatags.Option{
				adatags.WithFileScope(fileScope),
				adatags.WithQualifiedTags(qualifiedTags),
			}

			kindOpts, err := parseKindFlags(kinds)
			if err != nil {
				return err
			}
			opts = append(opts, kindOpts...)

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			var tags []adatags.Tag
			if info.IsDir() {
				results, err := adatags.WalkDir(path, opts...)
				if err != nil {
					return fmt.Errorf("walk %s: %w", path, err)
				}
				for _, r := range results {
					if r.Err != nil {
						fmt.Fprintf(os.Stderr, "adatags: %s\n", r.Err)
					}
					tags = append(tags, r.Tags...)
				}
			} else {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open %s: %w", path, err)
				}
				defer f.Close()

				opts = append(opts, adatags.WithFileName(path))
				tags, err = adatags.FindTags(adatags.NewLineReader(f), opts...)
				if err != nil {
					fmt.Fprintf(os.Stderr, "adatags: %s\n", err)
				}
			}

			var encoder format.Encoder
			switch outputFormat {
			case "line":
				encoder = format.NewLineEncoder(os.Stdout)
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(tags); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().BoolVar(&fileScope, "file-scope", false, "include tags for file-scoped names")
	cmd.Flags().BoolVar(&qualifiedTags, "qualified-tags", false, "additionally emit dotted, fully-qualified tags")
	cmd.Flags().StringVar(&kinds, "kinds", "", "comma-separated kind letters to force on (+x) or off (-x)")

	return cmd
}

// parseKindFlags turns a ctags-style "+x,-y" kind-letter string into
// WithKindEnabled options. A letter with no leading sign is treated as
// an enable, matching ctags' own --kinds= convention.
func parseKindFlags(spec string) ([]adatags.Option, error) {
	var opts []adatags.Option
	if spec == "" {
		return opts, nil
	}

	start := 0
	for start < len(spec) {
		end := start + 1
		for end < len(spec) && spec[end] != ',' {
			end++
		}
		token := spec[start:end]
		start = end + 1

		if token == "" {
			continue
		}

		enabled := true
		letter := token[0]
		switch letter {
		case '+':
			enabled = true
			token = token[1:]
		case '-':
			enabled = false
			token = token[1:]
		}
		if token == "" {
			return nil, fmt.Errorf("empty kind letter in --kinds")
		}

		k, ok := adatags.KindByLetter(token[0])
		if !ok {
			return nil, fmt.Errorf("unknown kind letter %q", token)
		}
		opts = append(opts, adatags.WithKindEnabled(k, enabled))
	}

	return opts, nil
}
