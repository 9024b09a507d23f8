package main

import (
	"fmt"
	"io"
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/hashing"
)

// drawKind names the rule that ended a game as a draw.
type drawKind int

const (
	noDraw drawKind = iota
	repetitionDraw
	fiftyMoveDraw
	materialDraw
)

func (d drawKind) String() string {
	switch d {
	case repetitionDraw:
		return "threefold repetition"
	case fiftyMoveDraw:
		return "fifty-move rule"
	case materialDraw:
		return "insufficient material"
	}
	return "none"
}

// drawReason reports which draw rule, if any, applies to the current position.
func drawReason(g *engine.Game, tracker *hashing.RepetitionTracker) drawKind {
	switch {
	case tracker.Threefold():
		return repetitionDraw
	case engine.FiftyMoveRule(g.Board):
		return fiftyMoveDraw
	case engine.HasInsufficientMaterial(g.Board):
		return materialDraw
	}
	return noDraw
}

// selfPlay lets the engine choose moves for both sides until the game ends,
// a draw rule applies, or the ply limit is reached, then writes the game.
func selfPlay(cfg *config.Config, g *engine.Game) error {
	startPly := g.Ply()
	s := newSearcher(cfg, g)
	tracker := hashing.NewRepetitionTracker(g.Board)

	draw := drawReason(g, tracker)
	for draw == noDraw && g.Ply()-startPly < cfg.Play.MaxPlies {
		move, score, ok := s.BestMove(cfg.Search.Depth)
		if !ok {
			break
		}
		g.Apply(move)
		tracker.Add(g.Board)
		cfg.Logf(2, "%d. %s %s score %d\n", g.Board.MoveNumber, move.Colour(), move, score)
		draw = drawReason(g, tracker)
	}

	res := result(g)
	if draw != noDraw {
		res = "1/2-1/2"
		cfg.Logf(1, "Draw by %s\n", draw)
	}
	var err error
	if cfg.Output.Format == config.PGN {
		err = writePGN(cfg.OutputFile, cfg.StartFEN, g.History, draw)
	} else {
		err = writeLALG(cfg.OutputFile, g.History, res)
	}
	if err != nil {
		return err
	}

	writePositionDetails(cfg, g, s.Stats())
	cfg.Logf(1, "Game over after %d plies: %s\n", g.Ply(), res)
	return nil
}

// writeLALG writes the moves in long algebraic notation followed by the result.
func writeLALG(w io.Writer, history []chess.Move, res string) error {
	words := make([]string, 0, len(history)+1)
	for _, m := range history {
		words = append(words, m.String())
	}
	words = append(words, res)
	_, err := fmt.Fprintln(w, strings.Join(words, " "))
	return err
}

// writePGN replays the moves through notnil/chess, which renders SAN
// movetext and detects mates, stalemates and dead positions. Draws that
// must be claimed are claimed here.
func writePGN(w io.Writer, startFEN string, history []chess.Move, draw drawKind) error {
	var opts []func(*notnil.Game)
	if startFEN != "" {
		fenOpt, err := notnil.FEN(startFEN)
		if err != nil {
			return fmt.Errorf("pgn start position: %w", err)
		}
		opts = append(opts, fenOpt)
	}

	game := notnil.NewGame(opts...)
	game.AddTagPair("Event", "chessai self-play")
	game.AddTagPair("White", "chessai")
	game.AddTagPair("Black", "chessai")
	if startFEN != "" {
		game.AddTagPair("SetUp", "1")
		game.AddTagPair("FEN", startFEN)
	}

	// Moves are decoded from long algebraic text; the game keeps its
	// default algebraic notation for output.
	var uci notnil.UCINotation
	for _, m := range history {
		mv, err := uci.Decode(game.Position(), m.String())
		if err != nil {
			return fmt.Errorf("pgn move %s: %w", m, err)
		}
		if err := game.Move(mv); err != nil {
			return fmt.Errorf("pgn move %s: %w", m, err)
		}
	}
	switch draw {
	case repetitionDraw:
		// A rejected claim leaves the game unfinished, which is still valid PGN.
		_ = game.Draw(notnil.ThreefoldRepetition)
	case fiftyMoveDraw:
		_ = game.Draw(notnil.FiftyMoveRule)
	}

	_, err := fmt.Fprintln(w, game.String())
	return err
}
