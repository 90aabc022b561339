package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	ConfigFile string
	InputFile  string
	OutputFile string
	SheetName  string
}

func ParseFlags() AppFlags {
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	inputFile := flag.String("input", "", "Path to the input CSV/XLSX file containing a 'url' column (overrides config file if set)")
	inputFileAlias := flag.String("i", "", "Alias for -input")

	outputFile := flag.String("output", "", "Path for the enriched output file; format follows the extension (overrides config file if set)")
	outputFileAlias := flag.String("o", "", "Alias for -output")

	sheetName := flag.String("sheet", "", "Worksheet to read when the input is an XLSX workbook (overrides config file if set)")
	sheetNameAlias := flag.String("s", "", "Alias for -sheet")

	flag.Parse()

	flags := AppFlags{}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	if *inputFile != "" {
		flags.InputFile = *inputFile
	} else if *inputFileAlias != "" {
		flags.InputFile = *inputFileAlias
	}

	if *outputFile != "" {
		flags.OutputFile = *outputFile
	} else if *outputFileAlias != "" {
		flags.OutputFile = *outputFileAlias
	}

	if *sheetName != "" {
		flags.SheetName = *sheetName
	} else if *sheetNameAlias != "" {
		flags.SheetName = *sheetNameAlias
	}

	return flags
}

// applyFlagOverrides lets command line flags take precedence over values
// loaded from the configuration file.
func applyFlagOverrides(flags AppFlags, inputFile, outputFile, sheetName *string) {
	if flags.InputFile != "" {
		*inputFile = flags.InputFile
	}
	if flags.OutputFile != "" {
		*outputFile = flags.OutputFile
	}
	if flags.SheetName != "" {
		*sheetName = flags.SheetName
	}
}

func requireFile(name, value string) {
	if value == "" {
		fmt.Fprintf(os.Stderr, "[FATAL] --%s argument is required (set it on the command line or in the config file)\n", name)
		os.Exit(1)
	}
}
