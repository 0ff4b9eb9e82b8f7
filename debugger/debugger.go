// This file is part of Continuum.
//
// Continuum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Continuum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Continuum.  If not, see <https://www.gnu.org/licenses/>.

// Package debugger provides an interactive prompt over the emulation
// core: registers can be set and the shift, rotate and decrement-and-
// branch instructions run one at a time with the condition codes on
// display. A headless game runs alongside so the effect of whole frames
// can be observed through the video digest.
package debugger

import (
	"io"
	"strconv"
	"strings"

	"github.com/sam-mfb/continuum-sub007/curated"
	"github.com/sam-mfb/continuum-sub007/debugger/colorterm"
	"github.com/sam-mfb/continuum-sub007/digest"
	"github.com/sam-mfb/continuum-sub007/galaxy"
	"github.com/sam-mfb/continuum-sub007/game"
	"github.com/sam-mfb/continuum-sub007/hardware/mc68000"
)

// Debugger is the interactive emulation prompt.
type Debugger struct {
	term *colorterm.ColorTerminal

	ctx *mc68000.Context

	gm  *game.Game
	vid *digest.Video

	running bool
}

var registerNames = map[string]mc68000.Register{
	"D0": mc68000.D0, "D1": mc68000.D1, "D2": mc68000.D2, "D3": mc68000.D3,
	"D4": mc68000.D4, "D5": mc68000.D5, "D6": mc68000.D6, "D7": mc68000.D7,
	"A0": mc68000.A0, "A1": mc68000.A1, "A2": mc68000.A2, "A3": mc68000.A3,
	"A4": mc68000.A4, "A5": mc68000.A5, "A6": mc68000.A6, "A7": mc68000.A7,
}

// NewDebugger creates a debugger running the given planet headlessly.
func NewDebugger(g *galaxy.Galaxy, planet int) (*Debugger, error) {
	if planet < 0 || planet >= len(g.Planets) {
		return nil, curated.Errorf("debugger: no planet %d in galaxy", planet)
	}

	return &Debugger{
		term: &colorterm.ColorTerminal{},
		ctx:  mc68000.NewContext(mc68000.Config{}),
		gm:   game.NewGame(g.Planets[planet]),
		vid:  digest.NewVideo(),
	}, nil
}

// Start the input loop, returning when the user quits.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.running = true
	for dbg.running {
		line, err := dbg.term.ReadLine("[continuum]")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}
		if line == "" {
			continue
		}

		if err := dbg.parseCommand(line); err != nil {
			dbg.term.PrintLine("red", "%v", err)
		}
	}

	return nil
}

func (dbg *Debugger) parseCommand(line string) error {
	toks := strings.Fields(strings.ToUpper(line))
	cmd := toks[0]
	args := toks[1:]

	switch cmd {
	case "QUIT", "Q", "EXIT":
		dbg.running = false

	case "HELP":
		dbg.help()

	case "STEP":
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf("debugger: invalid frame count [%s]", args[0])
			}
		}
		for i := 0; i < n; i++ {
			dbg.gm.Frame(0)
			dbg.vid.NewFrame(dbg.gm.Screen())
		}
		dbg.term.PrintLine("white", "frame %d", dbg.gm.FrameNum())

	case "SCREEN":
		dbg.term.PrintLine("white", "frame %d digest %s", dbg.gm.FrameNum(), dbg.vid.Hash())

	case "REGS":
		dbg.term.PrintLine("white", "%s", dbg.ctx.Reg.String())
		dbg.term.PrintLine("yellow", "%s: %s", dbg.ctx.SR.Label(), dbg.ctx.SR.String())

	case "CCR":
		dbg.term.PrintLine("yellow", "%s: %s", dbg.ctx.SR.Label(), dbg.ctx.SR.String())

	case "SET":
		if len(args) != 2 {
			return curated.Errorf("debugger: %v", "usage: SET <register> <value>")
		}
		reg, ok := registerNames[args[0]]
		if !ok {
			return curated.Errorf("debugger: unknown register [%s]", args[0])
		}
		v, err := strconv.ParseUint(args[1], 0, 32)
		if err != nil {
			return curated.Errorf("debugger: invalid value [%s]", args[1])
		}
		dbg.ctx.Reg.Set(reg, uint32(v))

	case "SWAP":
		if len(args) != 1 {
			return curated.Errorf("debugger: %v", "usage: SWAP <register>")
		}
		reg, ok := registerNames[args[0]]
		if !ok {
			return curated.Errorf("debugger: unknown register [%s]", args[0])
		}
		v := dbg.ctx.Swap(dbg.ctx.Reg.Get(reg))
		dbg.ctx.Reg.Set(reg, v)
		dbg.term.PrintLine("white", "%s = %08x", args[0], v)

	case "DBRA":
		if len(args) != 1 {
			return curated.Errorf("debugger: %v", "usage: DBRA <register>")
		}
		reg, ok := registerNames[args[0]]
		if !ok {
			return curated.Errorf("debugger: unknown register [%s]", args[0])
		}
		branch := dbg.ctx.Dbra(reg)
		dbg.term.PrintLine("white", "%s = %08x branch=%v", args[0], dbg.ctx.Reg.Get(reg), branch)

	default:
		return dbg.parseShift(cmd, args)
	}

	return nil
}

// parseShift handles the shift and rotate mnemonics, eg. "ROR.W D0 3".
func (dbg *Debugger) parseShift(cmd string, args []string) error {
	ops := map[string]func(uint32, int) uint32{
		"ROR.W": dbg.ctx.RorW, "ROR.L": dbg.ctx.RorL,
		"ROL.W": dbg.ctx.RolW, "ROL.L": dbg.ctx.RolL,
		"ASR.W": dbg.ctx.AsrW, "ASR.L": dbg.ctx.AsrL,
		"ASL.W": dbg.ctx.AslW, "ASL.L": dbg.ctx.AslL,
		"LSR.W": dbg.ctx.LsrW, "LSR.L": dbg.ctx.LsrL,
		"LSL.W": dbg.ctx.LslW, "LSL.L": dbg.ctx.LslL,
	}

	op, ok := ops[cmd]
	if !ok {
		return curated.Errorf("debugger: unknown command [%s]", cmd)
	}
	if len(args) != 2 {
		return curated.Errorf("debugger: usage: %s <register> <count>", cmd)
	}

	reg, ok := registerNames[args[0]]
	if !ok {
		return curated.Errorf("debugger: unknown register [%s]", args[0])
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return curated.Errorf("debugger: invalid count [%s]", args[1])
	}

	v := op(dbg.ctx.Reg.Get(reg), n)
	dbg.ctx.Reg.Set(reg, v)
	dbg.term.PrintLine("white", "%s = %08x  %s: %s", args[0], v, dbg.ctx.SR.Label(), dbg.ctx.SR.String())

	return nil
}

func (dbg *Debugger) help() {
	for _, l := range []string{
		"HELP                      this",
		"STEP [n]                  run the game for n frames",
		"SCREEN                    current frame number and video digest",
		"REGS                      register file and condition codes",
		"CCR                       condition codes",
		"SET <reg> <value>         set a register",
		"SWAP <reg>                exchange register halves",
		"DBRA <reg>                decrement and branch",
		"<op>.<size> <reg> <n>     ROR ROL ASR ASL LSR LSL at .W or .L",
		"QUIT                      leave the debugger",
	} {
		dbg.term.PrintLine("white", "%s", l)
	}
}
