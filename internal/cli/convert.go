package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DSOlab/ggdatetime-sub001/datetime"
	"github.com/DSOlab/ggdatetime-sub001/dtfmt"
	"github.com/DSOlab/ggdatetime-sub001/units"
)

// NewYMDToMJDCommand converts YYYY<sep>MM<sep>DD lines to decimal MJD.
func NewYMDToMJDCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ymd2mjd",
		Short: "Convert calendar dates (YYYY MM DD, any non-digit separator) to MJD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return processLines(opts, cmd.InOrStdin(), cmd.OutOrStdout(), convertYMDLine)
		},
	}
}

func convertYMDLine(line string) (string, error) {
	f := splitDigitFields(line)

	if len(f) != 3 {
		return "", fmt.Errorf("%w: want YYYY MM DD, got %q", datetime.ErrParse, line)
	}

	y, errY := strconv.Atoi(f[0])
	m, errM := strconv.Atoi(f[1])
	d, errD := strconv.Atoi(f[2])

	if errY != nil || errM != nil || errD != nil {
		return "", fmt.Errorf("%w: non-numeric field in %q", datetime.ErrParse, line)
	}

	mjd, err := datetime.MJDFromYMD(datetime.YMDDate{
		Year:  units.Year(y),
		Month: units.Month(m),
		Day:   units.DayOfMonth(d),
	})

	if err != nil {
		return "", err
	}

	return strconv.FormatInt(int64(mjd), 10), nil
}

/***********************************************/

// NewYDOYToMJDCommand converts YYYY<sep>DDD lines to decimal MJD.
func NewYDOYToMJDCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ydoy2mjd",
		Short: "Convert year and day-of-year (YYYY DDD) to MJD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return processLines(opts, cmd.InOrStdin(), cmd.OutOrStdout(), convertYDOYLine)
		},
	}
}

func convertYDOYLine(line string) (string, error) {
	f := splitDigitFields(line)

	if len(f) != 2 {
		return "", fmt.Errorf("%w: want YYYY DDD, got %q", datetime.ErrParse, line)
	}

	y, errY := strconv.Atoi(f[0])
	doy, errD := strconv.Atoi(f[1])

	if errY != nil || errD != nil {
		return "", fmt.Errorf("%w: non-numeric field in %q", datetime.ErrParse, line)
	}

	mjd, err := datetime.MJDFromYDOY(datetime.YDOYDate{
		Year: units.Year(y),
		Doy:  units.DayOfYear(doy),
	})

	if err != nil {
		return "", err
	}

	return strconv.FormatInt(int64(mjd), 10), nil
}

/***********************************************/

// NewMJDToYMDCommand converts decimal MJD lines to YYYY/MM/DD.
func NewMJDToYMDCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mjd2ymd",
		Short: "Convert MJD to calendar dates (YYYY/MM/DD)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return processLines(opts, cmd.InOrStdin(), cmd.OutOrStdout(), convertMJDLine)
		},
	}
}

func convertMJDLine(line string) (string, error) {
	mjd, err := strconv.ParseInt(line, 10, 64)

	if err != nil {
		return "", fmt.Errorf("%w: %q is not a decimal MJD", datetime.ErrParse, line)
	}

	return dtfmt.YMD(datetime.MJD(mjd).ToYMD()), nil
}
