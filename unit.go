// unit - unit expression tools

//go:build !js

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/MattSimmons1/unit/parser"
	"github.com/MattSimmons1/unit/system"
	"github.com/spf13/cobra"
)

func main() {
	if err := func() (rootCmd *cobra.Command) {
		var isLatin1 bool
		var isVerbose bool
		var dbPath string
		var defines []string

		encoding := func() parser.Encoding {
			if isLatin1 {
				return parser.Latin1
			}
			return parser.UTF8
		}

		loadSystem := func() *system.System {
			if isVerbose {
				parser.SetVerbose()
			}
			parser.SetErrorHandler(parser.WriteToStderr)
			var sys *system.System
			var err error
			switch {
			case dbPath == "":
				sys = system.Default()
			case strings.HasSuffix(dbPath, ".yaml"), strings.HasSuffix(dbPath, ".yml"):
				sys, err = system.ReadYAML(dbPath)
			default:
				sys, err = system.ReadXML(dbPath)
			}
			if err != nil {
				log.Fatalln(err)
			}
			for _, def := range defines {
				if err := define(sys, def); err != nil {
					log.Fatalln(err)
				}
			}
			return sys
		}

		rootCmd = &cobra.Command{
			Use:   "unit",
			Short: "unit expression command line tools",
			Args:  cobra.ArbitraryArgs,
			Run: func(c *cobra.Command, args []string) {
				if len(args) < 1 {
					fmt.Println("unit command line tools.\nUsage:\n  unit <expression>\nUse \"unit help\" for more information.")
					return
				}
				sys := loadSystem()
				u, err := parser.Parse(sys, args[0], encoding())
				if err != nil {
					os.Exit(1)
				}
				fmt.Println(system.Format(u))
			},
		}
		rootCmd.PersistentFlags().BoolVarP(&isLatin1, "latin1", "l", false,
			"read expressions as ISO 8859-1 instead of UTF-8")
		rootCmd.PersistentFlags().BoolVarP(&isVerbose, "verbose", "v", false,
			"trace the scanner while parsing")
		rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
			"load the unit system from an XML or YAML database (may be gzipped)")
		rootCmd.PersistentFlags().StringArrayVar(&defines, "define", nil,
			`add a unit definition of the form "name = expression" (repeatable)`)

		rootCmd.AddCommand(func() (convertCmd *cobra.Command) {
			convertCmd = &cobra.Command{
				Use:   "convert <value> <from> <to>",
				Short: "convert a numeric value between units",
				Args:  cobra.ExactArgs(3),
				Run: func(c *cobra.Command, args []string) {
					value, err := strconv.ParseFloat(args[0], 64)
					if err != nil {
						log.Fatalln("bad value:", args[0])
					}
					sys := loadSystem()
					from, err := parser.Parse(sys, args[1], encoding())
					if err != nil {
						os.Exit(1)
					}
					to, err := parser.Parse(sys, args[2], encoding())
					if err != nil {
						os.Exit(1)
					}
					result, err := system.Convert(value, from, to)
					if err != nil {
						log.Fatalln(err)
					}
					fmt.Println(result)
				},
			}
			return
		}())

		rootCmd.AddCommand(func() (checkCmd *cobra.Command) {
			checkCmd = &cobra.Command{
				Use:   "check <expression>...",
				Short: "validate expressions; exit non-zero if any fail",
				Args:  cobra.MinimumNArgs(1),
				Run: func(c *cobra.Command, args []string) {
					sys := loadSystem()
					failed := false
					for _, arg := range args {
						if _, err := parser.Parse(sys, arg, encoding()); err != nil {
							fmt.Printf("%s: %s\n", arg, err)
							failed = true
						} else {
							fmt.Printf("%s: ok\n", arg)
						}
					}
					if failed {
						os.Exit(1)
					}
				},
			}
			return
		}())

		rootCmd.AddCommand(func() (scanCmd *cobra.Command) {
			scanCmd = &cobra.Command{
				Use:   "scan <file>",
				Short: "check every units attribute in a CDL dump",
				Args:  cobra.ExactArgs(1),
				Run: func(c *cobra.Command, args []string) {
					raw, err := os.ReadFile(args[0])
					if err != nil {
						log.Fatalln(err)
					}
					sys := loadSystem()
					failed := false
					for _, spec := range parser.Extract(string(raw)) {
						if _, err := parser.Parse(sys, spec, encoding()); err != nil {
							fmt.Printf("%q: %s\n", spec, err)
							failed = true
						}
					}
					if failed {
						os.Exit(1)
					}
				},
			}
			return
		}())
		return
	}().Execute(); err != nil {
		log.Panicln(err)
	}
}

// define adds a "name = expression" definition to the system.
func define(sys *system.System, definition string) error {
	halves := strings.SplitN(definition, "=", 2)
	if len(halves) != 2 {
		return fmt.Errorf("bad definition %q, expected \"name = expression\"", definition)
	}
	name := strings.TrimSpace(halves[0])
	u, err := parser.Parse(sys, halves[1], parser.UTF8)
	if err != nil {
		return fmt.Errorf("bad definition %q: %v", definition, err)
	}
	return sys.MapNameToUnit(name, u)
}
