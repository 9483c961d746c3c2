package fpsController

import (
	"log"
	"sort"

	"janseva/database"
	"janseva/middleware"
	"janseva/models"
	"janseva/utils"
	fpsValidator "janseva/validators/fps"

	"github.com/gofiber/fiber/v2"
)

type nearbyShop struct {
	models.FPSShop
	DistanceKm float64 `json:"distance_km"`
}

// GetNearbyFPS returns the three fair price shops closest to the given
// coordinates. Shops without coordinates are skipped.
func GetNearbyFPS(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNearby").(*fpsValidator.NearbyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var shops []models.FPSShop
	if err := database.Database.Db.
		Where("is_deleted = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", false).
		Find(&shops).Error; err != nil {
		log.Println("Failed to fetch fair price shops:", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch fair price shops!", nil)
	}

	nearby := make([]nearbyShop, 0, len(shops))
	for _, shop := range shops {
		nearby = append(nearby, nearbyShop{
			FPSShop:    shop,
			DistanceKm: utils.DistanceKm(*reqData.Latitude, *reqData.Longitude, *shop.Latitude, *shop.Longitude),
		})
	}
	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	if len(nearby) > 3 {
		nearby = nearby[:3]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Nearby fair price shops fetched successfully!", fiber.Map{
		"total": len(nearby),
		"shops": nearby,
	})
}
