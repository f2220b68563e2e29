package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"pv-econ/internal/api/models"
	"pv-econ/internal/config"

	"github.com/gin-gonic/gin"
)

// PlantHandler lists the plant preset files available to requests
type PlantHandler struct {
	plantDir string
}

// NewPlantHandler creates a new plant handler
func NewPlantHandler() *PlantHandler {
	dir := os.Getenv("PLANT_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "plants")
		} else {
			dir = "./examples/plants"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &PlantHandler{plantDir: dir}
}

// ListPlants handles GET /api/v1/plants
func (h *PlantHandler) ListPlants(c *gin.Context) {
	plants := []models.PlantInfo{}

	entries, err := os.ReadDir(h.plantDir)
	if err != nil {
		log.Printf("PlantHandler: failed to read plant directory %s: %v", h.plantDir, err)
		c.JSON(http.StatusOK, gin.H{"plants": plants})
		return
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")

		name := id
		if cfg, err := config.LoadUnchecked(filepath.Join(h.plantDir, e.Name())); err == nil && cfg.Plant.Name != "" {
			name = cfg.Plant.Name
		}

		plants = append(plants, models.PlantInfo{
			ID:   id,
			Name: name,
			File: e.Name(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"plants": plants})
}
