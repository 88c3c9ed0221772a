package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/seedtools/seedsplit"
	"github.com/seedtools/seedsplit/cmd/seedsplit/codes"
	"github.com/seedtools/seedsplit/cmd/seedsplit/common"
	"github.com/seedtools/seedsplit/logging"
	"github.com/seedtools/seedsplit/shamir"
	"github.com/seedtools/seedsplit/version"
)

var log *logrus.Logger

func init() {
	log = logging.NewLogger("CMD")
}

func main() {
	cli.VersionPrinter = version.PrintVersion
	app := cli.NewApp()
	app.Name = "seedsplit"
	app.Usage = "split a BIP-39 seed phrase into shares that recombine to it"
	app.Version = version.Version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging output",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("verbose") {
			logging.SetLevel(logrus.InfoLevel)
			log.Info("Verbose mode enabled")
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:   "random",
			Usage:  "generate a new 12-word seed phrase",
			Action: random,
		},
		{
			Name:  "split",
			Usage: "split a seed phrase read from standard input into numbered shares",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "threshold, t",
					Usage: "number of shares needed to recreate the seed",
				},
				cli.UintFlag{
					Name:  "count, n",
					Usage: "total number of shares",
				},
			},
			Action: split,
		},
		{
			Name:      "combine",
			Usage:     "combine shares read from standard input into the original seed phrase",
			ArgsUsage: "<threshold>",
			Action:    combine,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(codes.ErrorGeneric)
	}
}

func random(c *cli.Context) error {
	phrase, err := seedsplit.Random()
	if err != nil {
		return toExitError(err)
	}
	fmt.Fprintln(c.App.Writer, phrase)
	return nil
}

func split(c *cli.Context) error {
	threshold := c.Uint("threshold")
	count := c.Uint("count")
	if threshold < 1 || count < 1 {
		return cli.NewExitError("error: a threshold and a share count of at least 1 are required", codes.ErrorInvalidArguments)
	}
	if threshold > shamir.MaxShares || count > shamir.MaxShares {
		return cli.NewExitError(fmt.Sprintf("error: at most %d shares are supported", shamir.MaxShares), codes.ErrorInvalidArguments)
	}
	common.Prompt("Enter the seed phrase to split: ")
	phrase, err := common.ReadLine(bufio.NewReader(os.Stdin))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("error: %s", err), codes.ErrorCouldNotReadInput)
	}
	shares, err := seedsplit.Split(phrase, uint8(threshold), uint8(count))
	if err != nil {
		return toExitError(err)
	}
	for _, share := range shares {
		fmt.Fprintln(c.App.Writer, share)
	}
	return nil
}

func combine(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("error: combine takes the number of shares as its only argument", codes.ErrorInvalidArguments)
	}
	threshold, err := strconv.ParseUint(c.Args().First(), 10, 8)
	if err != nil || threshold < 1 {
		return cli.NewExitError(fmt.Sprintf("error: the number of shares must be between 1 and %d", shamir.MaxShares), codes.ErrorInvalidArguments)
	}
	in := bufio.NewReader(os.Stdin)
	shares := make([]seedsplit.Share, 0, threshold)
	for i := uint64(0); i < threshold; i++ {
		common.Prompt(fmt.Sprintf("Share %d: ", i+1))
		line, err := common.ReadLine(in)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("error: %s", err), codes.ErrorCouldNotReadInput)
		}
		share, err := seedsplit.ParseShare(line)
		if err != nil {
			return toExitError(err)
		}
		shares = append(shares, share)
	}
	phrase, err := seedsplit.Combine(shares)
	if err != nil {
		return toExitError(err)
	}
	fmt.Fprintln(c.App.Writer, "Reconstructed:")
	fmt.Fprintln(c.App.Writer, phrase)
	return nil
}

// toExitError maps a library error onto the binary's exit statuses, using
// the friendly rendering when the error carries one.
func toExitError(err error) error {
	msg := err.Error()
	if userErr, ok := err.(seedsplit.UserError); ok {
		msg = userErr.UserError()
	}
	var code int
	switch err.(type) {
	case *seedsplit.InvalidArgumentsError:
		code = codes.ErrorInvalidArguments
	case *seedsplit.MalformedShareError:
		code = codes.ErrorMalformedShare
	case *seedsplit.InvalidMnemonicError:
		code = codes.ErrorInvalidMnemonic
	case *seedsplit.InconsistentShareSizesError:
		code = codes.ErrorInconsistentShareSizes
	case *seedsplit.UnsupportedEntropyError:
		code = codes.ErrorUnsupportedEntropySize
	default:
		code = codes.ErrorGeneric
	}
	return cli.NewExitError(fmt.Sprintf("error: %s", msg), code)
}
