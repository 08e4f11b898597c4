package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/histomap/backend/internal/server/middleware"
	"github.com/histomap/backend/internal/util"
	"github.com/histomap/backend/pkg/common"
	"github.com/histomap/backend/pkg/dedupe"
	"github.com/histomap/backend/pkg/store"
)

// GetDuplicatesHandler returns duplicate node candidates. The lexical mode
// is pure string comparison; the semantic mode embeds node text through
// the AI client, with the persistent embedding cache in front.
func GetDuplicatesHandler(c echo.Context) error {
	type getDuplicatesData struct {
		ID        string  `param:"id" validate:"required"`
		Mode      string  `query:"mode" validate:"omitempty,oneof=lexical semantic"`
		Threshold float64 `query:"threshold" validate:"omitempty,gt=0,lte=1"`
	}

	type getDuplicatesResponse struct {
		Mode       string                      `json:"mode"`
		Threshold  float64                     `json:"threshold"`
		Candidates []common.DuplicateCandidate `json:"candidates"`
	}

	data := new(getDuplicatesData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}

	if data.Mode == "" {
		data.Mode = "lexical"
	}

	g, ok, err := loadGraph(c, data.ID)
	if !ok {
		return err
	}

	app := c.(*middleware.AppContext).App

	switch data.Mode {
	case "semantic":
		if app.AiClient == nil {
			return c.JSON(http.StatusServiceUnavailable, messageResponse{Message: "No AI client configured"})
		}
		threshold := data.Threshold
		if threshold == 0 {
			threshold = dedupe.DefaultSemanticThreshold
		}
		detector := dedupe.NewDetector(dedupe.Params{
			Embedder: &store.CachedEmbedder{
				Source: app.AiClient,
				Cache:  app.Snapshots,
			},
			SemanticNodeCap:    int(util.GetEnvNumeric("DEDUPE_SEMANTIC_NODE_CAP", 0)),
			ParallelEmbeddings: int(util.GetEnvNumeric("AI_PARALLEL_REQ", 0)),
		})
		candidates := detector.Semantic(c.Request().Context(), &g, threshold)
		return c.JSON(http.StatusOK, getDuplicatesResponse{
			Mode:       data.Mode,
			Threshold:  threshold,
			Candidates: candidates,
		})
	default:
		threshold := data.Threshold
		if threshold == 0 {
			threshold = dedupe.DefaultLexicalThreshold
		}
		detector := dedupe.NewDetector(dedupe.Params{})
		candidates := detector.Lexical(&g, threshold)
		return c.JSON(http.StatusOK, getDuplicatesResponse{
			Mode:       data.Mode,
			Threshold:  threshold,
			Candidates: candidates,
		})
	}
}
