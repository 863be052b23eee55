// Command dvmverify drives the verifier, quickening optimizer, and
// register-map generator over JSON method fixtures, for manual and
// fixture-driven testing since this repository does not parse real DEX
// files, since this repository does not implement a DEX file parser.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dvmverify/quicken"
	"dvmverify/regmap"
	"dvmverify/resolver"
	"dvmverify/verifyflow"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "dvmverify",
		Short: "Dalvik-style bytecode verifier, quickener, and register-map generator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVerifyCmd())
	root.AddCommand(newOptimizeCmd())
	root.AddCommand(newRegmapCmd())
	return root
}

func newVerifyCmd() *cobra.Command {
	var soft bool
	var allowOptimized bool

	cmd := &cobra.Command{
		Use:   "verify <fixture.json>",
		Short: "Run phases 1-3 over a method fixture and report the outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := LoadFixture(args[0])
			if err != nil {
				return err
			}
			method, err := fx.Method.BuildMethod()
			if err != nil {
				return err
			}
			res := fx.Resolver.BuildResolver()

			mode := verifyflow.Hard
			if soft {
				mode = verifyflow.Soft
			}
			opts := verifyflow.Options{Mode: mode, AllowOptimized: allowOptimized}

			result, softFailures, err := runVerify(method, res, opts)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"method":        method.ID,
				"soft_failures": len(softFailures),
				"tracked_lines": len(result.Lines),
			}).Infoln("verification succeeded")
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d tracked lines, %d soft failures)\n", method.ID, len(result.Lines), len(softFailures))
			return nil
		},
	}
	cmd.Flags().BoolVar(&soft, "soft", false, "continue past resolution failures instead of rejecting the method")
	cmd.Flags().BoolVar(&allowOptimized, "allow-optimized", false, "set Options.AllowOptimized; the data-flow pass still rejects quickened opcodes")
	return cmd
}

func newOptimizeCmd() *cobra.Command {
	var fields bool
	var invokes bool

	cmd := &cobra.Command{
		Use:   "optimize <fixture.json>",
		Short: "Verify in soft mode, then quicken the method in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := LoadFixture(args[0])
			if err != nil {
				return err
			}
			method, err := fx.Method.BuildMethod()
			if err != nil {
				return err
			}
			res := fx.Resolver.BuildResolver()

			opts := verifyflow.Options{Mode: verifyflow.Soft}
			_, softFailures, err := runVerify(method, res, opts)
			if err != nil {
				return err
			}

			if err := quicken.Quicken(method, res, softFailures, quicken.Options{
				QuickenFieldAccess: fields,
				QuickenInvokes:     invokes,
			}); err != nil {
				return fmt.Errorf("dvmverify: quickening failed: %w", err)
			}

			out, _ := json.MarshalIndent(method.Code, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fields, "fields", true, "quicken iget*/iput* instructions")
	cmd.Flags().BoolVar(&invokes, "invokes", true, "quicken invoke-virtual/super/direct instructions")
	return cmd
}

func newRegmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regmap <fixture.json>",
		Short: "Verify a method and emit its encoded register map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := LoadFixture(args[0])
			if err != nil {
				return err
			}
			method, err := fx.Method.BuildMethod()
			if err != nil {
				return err
			}
			res := fx.Resolver.BuildResolver()

			opts := verifyflow.Options{Mode: verifyflow.Hard, GenerateRegisterMap: true}
			static, err := verifyflow.RunStaticChecks(method)
			if err != nil {
				return fmt.Errorf("dvmverify: static checks failed: %w", err)
			}
			result, err := verifyflow.Verify(method, static, res, opts)
			if err != nil {
				return fmt.Errorf("dvmverify: verification failed: %w", err)
			}

			mp, err := regmap.Generate(method, static.Flags, result)
			if err != nil {
				return err
			}
			if err := regmap.SelfCheck(mp, result); err != nil {
				return fmt.Errorf("dvmverify: register map self-check failed: %w", err)
			}

			encoded := mp.Encode()
			log.WithFields(log.Fields{
				"method":  method.ID,
				"entries": len(mp.Entries),
				"bytes":   len(encoded),
			}).Infoln("register map generated")
			fmt.Fprintf(cmd.OutOrStdout(), "%x\n", encoded)
			return nil
		},
	}
	return cmd
}

// runVerify threads a method through phases 1-3 and returns both the
// data-flow result and the soft failures accumulated along the way, the
// shape the verify and optimize subcommands need.
func runVerify(method *verifyflow.Method, res resolver.Resolver, opts verifyflow.Options) (*verifyflow.Result, []*verifyflow.SoftFailure, error) {
	static, err := verifyflow.RunStaticChecks(method)
	if err != nil {
		return nil, nil, fmt.Errorf("dvmverify: static checks failed: %w", err)
	}
	result, err := verifyflow.Verify(method, static, res, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("dvmverify: data-flow verification failed: %w", err)
	}
	return result, result.SoftFailures, nil
}
