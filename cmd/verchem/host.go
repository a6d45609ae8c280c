/*
 * host.go, part of verchem.
 *
 * Copyright 2026 The verchem authors <verchem{at}verchemDOTxyz>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Verchem is developed for chemistry instruction at secondary-school
 * and introductory university level.
 *
 */

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	chem "github.com/verchemxyz/verchem-sub008"
	"github.com/verchemxyz/verchem-sub008/chemjson"
	"github.com/verchemxyz/verchem-sub008/internal/prefs"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Speak the editor wire protocol on stdin and stdout",
	Long: `Speak the editor wire protocol: graphical front ends launch
"verchem host" and exchange JSON lines with it over stdin and stdout.

The host sends one options line first; empty fields come back filled
from the saved preferences, so a front end can start with {} and let
the machine's settings decide. After the handshake every scene the host
sends is rebuilt under the bonding rules and answered with the same
scene carrying fresh verdicts: formal charges, open valences and the
stability of every atom, under the ids the host chose. A scene that
breaks the rules is answered with an error line instead.

The session ends when the host closes stdin.`,
	Args: cobra.NoArgs,
	RunE: runHost,
}

func init() {
	rootCmd.AddCommand(hostCmd)
}

func runHost(cmd *cobra.Command, args []string) error {
	stdin := bufio.NewReader(os.Stdin)
	out := json.NewEncoder(os.Stdout)

	opts, jerr := chemjson.DecodeOptions(stdin)
	if jerr != nil {
		wireFail(jerr)
	}
	fillOptions(opts)
	if err := out.Encode(opts); err != nil {
		return err
	}

	for {
		if _, err := stdin.Peek(1); err == io.EOF {
			return nil
		}
		sc, jerr := chemjson.DecodeScene(stdin)
		if jerr != nil {
			wireFail(jerr)
		}
		reply, jerr := verdicts(sc)
		if jerr != nil {
			//bad chemistry is an answer, not a session killer
			os.Stdout.Write(append(jerr.Marshal(), '\n'))
			continue
		}
		if jerr := reply.Transmit(os.Stdout); jerr != nil {
			wireFail(jerr)
		}
	}
}

//fillOptions completes an options line from the saved preferences, so a
//host sending {} gets the machine's defaults.
func fillOptions(o *chemjson.Options) {
	p := prefs.Load()
	if o.Element == "" || !chem.KnownSymbol(o.Element) {
		o.Element = p.Editor.Element
	}
	if o.Order < chem.MinOrder || o.Order > chem.MaxOrder {
		o.Order = p.Editor.Order
	}
	if o.Width <= 0 {
		o.Width = p.Editor.Width
	}
	if o.Height <= 0 {
		o.Height = p.Editor.Height
	}
}

//verdicts rebuilds the received scene under the bonding rules and returns
//it with fresh chemistry, keyed by the ids the host sent.
func verdicts(sc *chemjson.Scene) (*chemjson.Scene, *chemjson.Error) {
	D, ids, jerr := sc.Rebuild()
	if jerr != nil {
		return nil, jerr
	}
	val := chem.Validate(D)
	reply := &chemjson.Scene{
		Header: chemjson.Header{
			Natoms:  len(sc.Atoms),
			Nbonds:  len(sc.Bonds),
			Formula: val.Formula,
			Mass:    val.Mass,
			Stable:  val.Stable,
		},
		Atoms: make([]*chemjson.Atom, 0, len(sc.Atoms)),
		Bonds: sc.Bonds,
	}
	for _, a := range sc.Atoms {
		na := *a
		if rep := val.Report(ids[a.ID]); rep != nil {
			na.FormalCharge = rep.FormalCharge
			na.Needs = rep.Needs
			na.Stable = rep.Stable()
		}
		reply.Atoms = append(reply.Atoms, &na)
	}
	return reply, nil
}

//wireFail reports a protocol failure both to the host, on the wire, and
//to whoever is watching stderr, then gives up on the session.
func wireFail(jerr *chemjson.Error) {
	os.Stdout.Write(append(jerr.Marshal(), '\n'))
	fmt.Fprintf(os.Stderr, "verchem host: %v\n", jerr)
	os.Exit(ExitProtocol)
}
