package main

import (
	"log"
	"net/http"
	"studio/src/services"
	"studio/src/types"

	"github.com/gin-gonic/gin"
)

func publicAvailabilityHandlers(g *gin.RouterGroup, availability *services.AvailabilityService, bookings *services.BookingService) *gin.RouterGroup {
	g.
		GET("/availability", func(ctx *gin.Context) {
			windows, err := availability.List(ctx)
			if err != nil {
				abortWithError(ctx, err, "Failed to fetch availability", http.StatusConflict)
				return
			}
			ctx.JSON(http.StatusOK, windows)
		}).
		GET("/availability/slots", func(ctx *gin.Context) {
			var query types.SlotsQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err, err.Error())})
				return
			}
			slots, err := bookings.Slots(ctx, query)
			if err != nil {
				abortWithError(ctx, err, "Failed to fetch slots", http.StatusConflict)
				return
			}
			ctx.JSON(http.StatusOK, slots)
		})
	return g
}

func availabilityHandlers(g *gin.RouterGroup, availability *services.AvailabilityService) *gin.RouterGroup {
	g.
		POST("/availability", func(ctx *gin.Context) {
			var body types.CreateAvailabilityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				log.Printf("[CreateAvailability] error: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err, MSG_INVALID_BODY)})
				return
			}
			window, err := availability.Create(ctx, body)
			if err != nil {
				abortWithError(ctx, err, "Failed to create availability", http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusCreated, window)
		}).
		PUT("/availability/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateAvailabilityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				log.Printf("[UpdateAvailability] error: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err, MSG_INVALID_BODY)})
				return
			}
			window, err := availability.Update(ctx, params.ID, body)
			if err != nil {
				abortWithError(ctx, err, "Failed to update availability", http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, window)
		}).
		DELETE("/availability/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := availability.Delete(ctx, params.ID); err != nil {
				abortWithError(ctx, err, "Failed to delete availability", http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"id":      params.ID,
				"message": "Availability slot deleted successfully",
			})
		})
	return g
}
