package cmd

import "github.com/pterm/pterm"

// Operator-facing messages carry a severity marker so errors, warnings
// and progress notes are distinguishable at a glance.

func printInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

func printSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

func printWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

func printError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}
