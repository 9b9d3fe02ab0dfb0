// Command smoothdemo runs every smoother over a synthetic spiky sensor signal
// and prints the per-sample outputs, a noise summary and, optionally, each
// filter's frequency response.
//
// Usage:
//
//	smoothdemo [flags]
//
// Examples:
//
//	smoothdemo
//	smoothdemo --window 9 --sigma 2 --samples 500 --quiet
//	smoothdemo --config profile.yaml --response
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logrus.WithError(err).Fatal("smoothdemo failed")
	}
}
