package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/arloliu/gamesave"
	"github.com/arloliu/gamesave/compress"
	"github.com/arloliu/gamesave/format"
	"github.com/arloliu/gamesave/obfs"
	"github.com/arloliu/gamesave/rankcode"
	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "Compress and obfuscate raw bytes into entry text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := a.readInput(cmd)
			if err != nil {
				return err
			}

			text, err := gamesave.Encode(raw, a.encoderOptions()...)
			if err != nil {
				return err
			}
			a.logger.Debug("encoded", "bytes", len(raw), "text_len", len(text))

			return a.writeOutput(cmd, []byte(text+"\n"))
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Recover raw bytes from entry text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := a.readInput(cmd)
			if err != nil {
				return err
			}

			raw, err := gamesave.Decode(string(text), size)
			if err != nil {
				return err
			}
			a.logger.Debug("decoded", "text_len", len(text), "bytes", len(raw))

			return a.writeOutput(cmd, raw)
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "Expected decoded size in bytes (0 = discover)")

	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the rank code header of entry text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := a.readInput(cmd)
			if err != nil {
				return err
			}

			blob, err := obfs.Decode(string(text))
			if err != nil {
				return err
			}

			dec, err := rankcode.NewDecoder(blob)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dec.IsEmpty() {
				fmt.Fprintln(out, "empty blob")
				return nil
			}

			n, err := dec.Count()
			if err != nil {
				return err
			}

			header := dec.Header()
			fmt.Fprintf(out, "blob bytes:   %d\n", len(blob))
			fmt.Fprintf(out, "bit count:    %d\n", header.BitCount)
			fmt.Fprintf(out, "tab count:    %d\n", header.TabCount())
			fmt.Fprintf(out, "rank table:   % x\n", header.RankTable)
			fmt.Fprintf(out, "decoded size: %d\n", n)
			if n > 0 {
				fmt.Fprintf(out, "ratio:        %.2f%%\n", float64(len(blob))*100/float64(n))
			}

			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Compare the rank code against general-purpose codecs on raw bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := a.readInput(cmd)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CODEC\tBYTES\tRATIO\tTEXT\tCOMPRESS\tDECOMPRESS")

			for _, ct := range format.CompressionTypes {
				codec, err := compress.GetCodec(ct)
				if err != nil {
					return err
				}

				stats, err := compress.Measure(codec, raw)
				if err != nil {
					return err
				}
				a.logger.Debug("measured", "codec", ct.String(), "bytes", stats.CompressedSize)

				fmt.Fprintf(tw, "%s\t%d\t%.2f%%\t%d\t%dns\t%dns\n",
					stats.Algorithm,
					stats.CompressedSize,
					stats.CompressionRatio()*100,
					obfs.EncodedLen(int(stats.CompressedSize), obfs.DefaultLineWidth),
					stats.CompressionTimeNs,
					stats.DecompressionTimeNs,
				)
			}

			return tw.Flush()
		},
	}
}
