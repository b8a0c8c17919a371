package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/pkg/engine"
	"github.com/six78/crew-cli/pkg/missions"
	"github.com/six78/crew-cli/pkg/protocol"
	"github.com/six78/crew-cli/pkg/storage"
)

type MissionResult struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Status      missions.Status `json:"status"`
}

type PlayerResult struct {
	ID       protocol.PlayerID `json:"id"`
	Name     string            `json:"name"`
	Seat     protocol.SeatKey  `json:"seat"`
	Tricks   int               `json:"tricks"`
	Missions []MissionResult   `json:"missions"`
}

type ReplayResponse struct {
	Seeds     string         `json:"seeds"`
	Success   bool           `json:"success"`
	Completed bool           `json:"completed"`
	UndoUsed  bool           `json:"undo_used"`
	Players   []PlayerResult `json:"players"`
}

func (s *Server) saveMatch(c *gin.Context) {
	var summary protocol.MatchSummary
	if err := c.ShouldBindJSON(&summary); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed match summary"})
		return
	}
	if err := summary.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.matchLog.SaveMatch(c.Request.Context(), &summary)
	if err != nil {
		s.logger.Error("failed to save match", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save match"})
		return
	}

	s.logger.Info("match saved",
		zap.Stringer("seeds", summary.Seeds()),
		zap.Bool("success", summary.Success))
	c.JSON(http.StatusOK, gin.H{"seeds": summary.Seeds().String()})
}

func (s *Server) listMatches(c *gin.Context) {
	playerID := protocol.PlayerID(c.Param("playerID"))

	summaries, err := s.matchLog.ListMatches(c.Request.Context(), playerID)
	if err != nil {
		s.logger.Error("failed to list matches", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list matches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summaries})
}

func (s *Server) replayMatch(c *gin.Context) {
	seeds, err := protocol.ParseSeeds(c.Param("seeds"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := s.matchLog.LoadMatch(c.Request.Context(), seeds)
	if errors.Is(err, storage.ErrMatchNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to load match", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load match"})
		return
	}

	table, err := Replay(summary, s.logger)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, replayResponse(summary, table))
}

// Replay reconstructs the final table of a logged match.
func Replay(summary *protocol.MatchSummary, logger *zap.Logger) (*engine.GameState, error) {
	server, err := summary.ServerState()
	if err != nil {
		return nil, errors.Wrap(err, "invalid match summary")
	}
	return engine.ReconstructFromTokens(server, summary.Moves, engine.WithLogger(logger)), nil
}

func replayResponse(summary *protocol.MatchSummary, table *engine.GameState) ReplayResponse {
	response := ReplayResponse{
		Seeds:     summary.Seeds().String(),
		Success:   table.Succeeded,
		Completed: table.Completed,
		UndoUsed:  table.UndoUsed,
		Players:   make([]PlayerResult, 0, table.NumPlayers),
	}

	for _, seat := range table.ActiveSeats() {
		player := table.Player(seat)
		result := PlayerResult{
			ID:       player.ID,
			Name:     player.Name,
			Seat:     seat,
			Tricks:   len(player.Tricks),
			Missions: make([]MissionResult, 0, len(player.Missions)),
		}
		for _, mission := range player.Missions {
			result.Missions = append(result.Missions, MissionResult{
				ID:          mission.ID,
				Description: mission.Describe(table.NumPlayers),
				Status:      mission.Status,
			})
		}
		response.Players = append(response.Players, result)
	}
	return response
}
