package api

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/statelens/statelens/app/aggregate"
	"github.com/statelens/statelens/app/dataset"
	"github.com/statelens/statelens/app/tasks"
)

func NewHandler(datasetPath string, topics []string, runner tasks.PipelineRunner,
	scheduler tasks.TaskSchedulerInterface) *Handler {
	return &Handler{
		datasetPath: datasetPath,
		topics:      topics,
		runner:      runner,
		scheduler:   scheduler,
	}
}

// loadDataset reads the persisted artifact fresh on every request. The
// scheduler swaps it atomically, so a read always sees a complete file.
func (h *Handler) loadDataset(c *gin.Context) (*dataset.Table, bool) {
	table, err := dataset.ReadCSV(h.datasetPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Dataset not available",
				"message": "No dataset has been generated yet",
			})
			return nil, false
		}

		slog.Error("Failed to read dataset", "path", h.datasetPath, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read dataset"})
		return nil, false
	}

	return table, true
}

func (h *Handler) GetDataset(c *gin.Context) {
	table, ok := h.loadDataset(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":  table.Rows(),
		"total": table.Len(),
	})
}

func (h *Handler) GetStateAggregates(c *gin.Context) {
	table, ok := h.loadDataset(c)
	if !ok {
		return
	}

	states := aggregate.ByState(table.Rows())

	c.JSON(http.StatusOK, gin.H{
		"states": states,
		"total":  len(states),
	})
}

func (h *Handler) GetSourceAggregates(c *gin.Context) {
	table, ok := h.loadDataset(c)
	if !ok {
		return
	}

	minCount := aggregate.DefaultSourceMinCount
	if raw := c.Query("min_count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_count must be a positive integer"})
			return
		}
		minCount = parsed
	}

	sources := aggregate.BySource(table.Rows(), minCount)

	c.JSON(http.StatusOK, gin.H{
		"sources":   sources,
		"total":     len(sources),
		"min_count": minCount,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if info, err := os.Stat(h.datasetPath); err == nil {
		health["dataset_updated_at"] = info.ModTime().Format(time.RFC3339)
	}

	health["topics"] = len(h.topics)

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	table, ok := h.loadDataset(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":    table.Len(),
		"states":  len(aggregate.ByState(table.Rows())),
		"sources": len(aggregate.BySource(table.Rows(), 1)),
		"topics":  h.topics,
	})
}

func (h *Handler) APIRefreshDataset(c *gin.Context) {
	task := tasks.NewRefreshDatasetTask(h.runner, h.topics, h.datasetPath)

	if err := h.scheduler.EnqueueTask(task); err != nil {
		slog.Error("Error enqueueing refresh task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue refresh task",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"message": "Dataset refresh enqueued",
		"task": gin.H{
			"id":   task.ID,
			"type": task.Type,
		},
	})
}
