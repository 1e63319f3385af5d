//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package uci contains the UciHandler data structure and functionality to
// handle the UCI protocol communication between the Chess User Interface
// and the chess engine.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/kopparsynth/mailchess/internal/board"
	"github.com/kopparsynth/mailchess/internal/fen"
	myLogging "github.com/kopparsynth/mailchess/internal/logging"
	"github.com/kopparsynth/mailchess/internal/movegen"
	"github.com/kopparsynth/mailchess/internal/moveslice"
	"github.com/kopparsynth/mailchess/internal/movetext"
	"github.com/kopparsynth/mailchess/internal/search"
	. "github.com/kopparsynth/mailchess/internal/types"
)

var log = myLogging.GetLog()

const engineName = "MailChess 1.0"
const engineAuthor = "kopparsynth"

// UciHandler reads UCI protocol commands from InIo and writes replies
// to OutIo, driving one search.Search and one current board.Board.
type UciHandler struct {
	InIo  io.Reader
	OutIo io.Writer

	mySearch *search.Search
	myBoard  *board.Board

	uciLog *logging.Logger
}

// NewUciHandler creates a ready-to-run handler reading from stdin and
// writing to stdout, with the engine's search wired to report progress
// back through this handler.
func NewUciHandler() *UciHandler {
	b, _ := fen.Parse(fen.StartFEN)
	u := &UciHandler{
		InIo:     os.Stdin,
		OutIo:    os.Stdout,
		mySearch: search.NewSearch(),
		myBoard:  b,
		uciLog:   myLogging.GetUciLog(),
	}
	u.mySearch.SetUciHandler(u)
	return u
}

// Loop reads commands from InIo until "quit" or end of input, dispatching
// each line to handleReceivedCommand.
func (u *UciHandler) Loop() {
	scanner := bufio.NewScanner(u.InIo)
	for scanner.Scan() {
		if !u.handleReceivedCommand(scanner.Text()) {
			return
		}
	}
}

// Command runs a single command line through the same dispatch Loop
// uses, for tests that don't want to drive a full scanner loop.
func (u *UciHandler) Command(cmd string) bool {
	return u.handleReceivedCommand(cmd)
}

// handleReceivedCommand dispatches one line of UCI input. It returns
// false when the engine should stop reading further commands.
func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	u.uciLog.Debugf("<< %s", cmd)
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "quit":
		u.mySearch.StopSearch()
		return false
	case "uci":
		u.uciCommand()
	case "isready":
		u.isReadyCommand()
	case "setoption":
		u.setOptionCommand(fields[1:])
	case "ucinewgame":
		u.uciNewGameCommand()
	case "position":
		u.positionCommand(fields[1:])
	case "go":
		u.goCommand(fields[1:])
	case "stop":
		u.stopCommand()
	case "ponderhit":
		u.ponderHitCommand()
	case "debug":
		u.debugCommand(fields[1:])
	case "register":
		u.registerCommand()
	case "perft":
		u.perftCommand(fields[1:])
	case "print-board":
		u.printBoardCommand()
	case "":
		// noop
	default:
		u.send(fmt.Sprintf("info string unknown command: %s", cmd))
	}
	return true
}

// uciCommand answers the "uci" handshake: identity, options, and the
// terminating "uciok".
func (u *UciHandler) uciCommand() {
	u.send(fmt.Sprintf("id name %s", engineName))
	u.send(fmt.Sprintf("id author %s", engineAuthor))
	for _, line := range *uciOptions.GetOptions() {
		u.send(line)
	}
	u.send("uciok")
}

func (u *UciHandler) isReadyCommand() {
	u.mySearch.IsReady()
}

func (u *UciHandler) setOptionCommand(fields []string) {
	name, value := parseNameValue(fields)
	opt, ok := uciOptions[name]
	if !ok {
		u.SendInfoString(fmt.Sprintf("unknown option: %s", name))
		return
	}
	if value != "" {
		opt.CurrentValue = value
	}
	opt.HandlerFunc(u, opt)
}

// parseNameValue splits setoption's "name <id> [value <v>]" argument
// tail. The id itself may contain spaces, so everything up to "value"
// (or the end) belongs to the name.
func parseNameValue(fields []string) (name, value string) {
	var nameParts, valueParts []string
	inValue := false
	for i := 0; i < len(fields); i++ {
		switch {
		case fields[i] == "name" && !inValue:
			continue
		case fields[i] == "value":
			inValue = true
		case inValue:
			valueParts = append(valueParts, fields[i])
		default:
			nameParts = append(nameParts, fields[i])
		}
	}
	return strings.Join(nameParts, " "), strings.Join(valueParts, " ")
}

func (u *UciHandler) uciNewGameCommand() {
	u.mySearch.NewGame()
	u.myBoard, _ = fen.Parse(fen.StartFEN)
}

// positionCommand implements "position [startpos | fen <FEN>] [moves ...]".
func (u *UciHandler) positionCommand(fields []string) {
	if len(fields) == 0 {
		u.SendInfoString("position: missing startpos/fen")
		return
	}
	var b *board.Board
	var rest []string
	switch fields[0] {
	case "startpos":
		var err error
		b, err = fen.Parse(fen.StartFEN)
		if err != nil {
			u.SendInfoString(fmt.Sprintf("position: %v", err))
			return
		}
		rest = fields[1:]
	case "fen":
		movesIdx := len(fields)
		for i, f := range fields {
			if f == "moves" {
				movesIdx = i
				break
			}
		}
		fenStr := strings.Join(fields[1:movesIdx], " ")
		parsed, err := fen.Parse(fenStr)
		if err != nil {
			u.SendInfoString(fmt.Sprintf("position: %v", err))
			return
		}
		b = parsed
		rest = fields[movesIdx:]
	default:
		u.SendInfoString(fmt.Sprintf("position: expected startpos or fen, got %q", fields[0]))
		return
	}
	if len(rest) > 0 && rest[0] == "moves" {
		for _, mv := range rest[1:] {
			m, ok := movetext.Decode(b, mv)
			if !ok {
				u.SendInfoString(fmt.Sprintf("position: illegal move %q", mv))
				break
			}
			b.Make(m)
		}
	}
	u.myBoard = b
}

// goCommand implements "go [wtime ..] [btime ..] [winc ..] [binc ..]
// [movestogo ..] [depth ..] [nodes ..] [mate ..] [movetime ..]
// [infinite] [ponder]".
func (u *UciHandler) goCommand(fields []string) {
	sl := u.readSearchLimits(fields)
	u.mySearch.StartSearch(u.myBoard, *sl)
}

func (u *UciHandler) readSearchLimits(fields []string) *search.Limits {
	sl := search.NewSearchLimits()
	sl.TimeControl = true
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "infinite":
			sl.Infinite = true
			sl.TimeControl = false
		case "ponder":
			sl.Ponder = true
		case "depth":
			i++
			sl.Depth = parseIntArg(fields, i)
			sl.TimeControl = false
		case "nodes":
			i++
			sl.Nodes = uint64(parseIntArg(fields, i))
			sl.TimeControl = false
		case "mate":
			i++
			sl.Mate = parseIntArg(fields, i)
		case "movetime":
			i++
			sl.MoveTime = time.Duration(parseIntArg(fields, i)) * time.Millisecond
		case "wtime":
			i++
			sl.WhiteTime = time.Duration(parseIntArg(fields, i)) * time.Millisecond
		case "btime":
			i++
			sl.BlackTime = time.Duration(parseIntArg(fields, i)) * time.Millisecond
		case "winc":
			i++
			sl.WhiteInc = time.Duration(parseIntArg(fields, i)) * time.Millisecond
		case "binc":
			i++
			sl.BlackInc = time.Duration(parseIntArg(fields, i)) * time.Millisecond
		case "movestogo":
			i++
			sl.MovesToGo = parseIntArg(fields, i)
		}
	}
	return sl
}

func parseIntArg(fields []string, i int) int {
	if i >= len(fields) {
		return 0
	}
	v, err := strconv.Atoi(fields[i])
	if err != nil {
		log.Warningf("uci: invalid integer argument %q", fields[i])
		return 0
	}
	return v
}

func (u *UciHandler) stopCommand() {
	u.mySearch.StopSearch()
}

func (u *UciHandler) ponderHitCommand() {
	u.mySearch.PonderHit()
}

func (u *UciHandler) debugCommand(_ []string) {
	u.SendInfoString("debug command not implemented")
}

func (u *UciHandler) registerCommand() {
	u.SendInfoString("register command not implemented")
}

// perftCommand runs a synchronous perft count on the current position
// and reports the node count as an info string.
func (u *UciHandler) perftCommand(fields []string) {
	depth := 1
	if len(fields) > 0 {
		depth = parseIntArg(fields, 0)
	}
	start := time.Now()
	nodes := movegen.Perft(u.myBoard, depth)
	elapsed := time.Since(start)
	u.SendInfoString(fmt.Sprintf("perft depth %d: %d nodes in %s", depth, nodes, elapsed))
}

func (u *UciHandler) printBoardCommand() {
	u.SendInfoString("\n" + u.myBoard.String())
}

func (u *UciHandler) send(s string) {
	u.uciLog.Debugf(">> %s", s)
	_, _ = fmt.Fprintln(u.OutIo, s)
}

// SendReadyOk implements uciinterface.UciDriver.
func (u *UciHandler) SendReadyOk() {
	u.send("readyok")
}

// SendInfoString implements uciinterface.UciDriver.
func (u *UciHandler) SendInfoString(info string) {
	u.send("info string " + info)
}

// SendIterationEndInfo implements uciinterface.UciDriver.
func (u *UciHandler) SendIterationEndInfo(depth int, seldepth int, value Value, nodes uint64, nps uint64, t time.Duration, pv moveslice.MoveSlice) {
	u.send(fmt.Sprintf("info depth %d seldepth %d score %s nodes %d nps %d time %d pv %s",
		depth, seldepth, scoreString(value), nodes, nps, t.Milliseconds(), pv.StringUci()))
}

// SendAspirationResearchInfo implements uciinterface.UciDriver.
func (u *UciHandler) SendAspirationResearchInfo(depth int, seldepth int, value Value, bound string, nodes uint64, nps uint64, t time.Duration, pv moveslice.MoveSlice) {
	u.send(fmt.Sprintf("info depth %d seldepth %d score %s %s nodes %d nps %d time %d pv %s",
		depth, seldepth, scoreString(value), bound, nodes, nps, t.Milliseconds(), pv.StringUci()))
}

// SendCurrentRootMove implements uciinterface.UciDriver.
func (u *UciHandler) SendCurrentRootMove(currMove Move, moveNumber int) {
	if currMove == MoveNone {
		return
	}
	u.send(fmt.Sprintf("info currmove %s currmovenumber %d", currMove.StringUci(), moveNumber))
}

// SendSearchUpdate implements uciinterface.UciDriver.
func (u *UciHandler) SendSearchUpdate(depth int, seldepth int, nodes uint64, nps uint64, t time.Duration, hashfull int) {
	u.send(fmt.Sprintf("info depth %d seldepth %d nodes %d nps %d time %d hashfull %d",
		depth, seldepth, nodes, nps, t.Milliseconds(), hashfull))
}

// SendCurrentLine implements uciinterface.UciDriver.
func (u *UciHandler) SendCurrentLine(moveList moveslice.MoveSlice) {
	if moveList.Len() == 0 {
		return
	}
	u.send(fmt.Sprintf("info currline %s", moveList.StringUci()))
}

// SendResult implements uciinterface.UciDriver.
func (u *UciHandler) SendResult(bestMove Move, ponderMove Move) {
	if ponderMove != MoveNone {
		u.send(fmt.Sprintf("bestmove %s ponder %s", bestMove.StringUci(), ponderMove.StringUci()))
		return
	}
	u.send(fmt.Sprintf("bestmove %s", bestMove.StringUci()))
}

// scoreString renders a Value as a UCI score token: "mate N" for mate
// scores (N in moves, signed by which side is mating), "cp N" otherwise
// (N in centipawns; the internal unit is ten times a centipawn).
func scoreString(v Value) string {
	if v.IsMateScore() {
		var pliesToMate int
		if v > 0 {
			pliesToMate = int(MaxScore - 100 - v)
		} else {
			pliesToMate = int(v - MinScore - 100)
		}
		moves := (pliesToMate + 1) / 2
		if v < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	}
	return fmt.Sprintf("cp %d", int(v)/10)
}
