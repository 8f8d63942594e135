package main

import (
	"log"
	"net/http"
	"studio/src/services"
	"studio/src/types"

	"github.com/gin-gonic/gin"
)

const MSG_BOOKING_SUBMITTED = "Booking request submitted successfully! You will receive a confirmation email shortly."

func publicBookingHandlers(g *gin.RouterGroup, bookings *services.BookingService) *gin.RouterGroup {
	g.
		GET("/bookings/check-availability", func(ctx *gin.Context) {
			if ctx.Query("date") == "" || ctx.Query("startTime") == "" || ctx.Query("endTime") == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing parameters"})
				return
			}
			var query types.CheckAvailabilityQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err, err.Error())})
				return
			}
			check, err := bookings.CheckAvailability(ctx, query.Date, query.StartTime, query.EndTime)
			if err != nil {
				abortWithError(ctx, err, "Failed to check availability", http.StatusConflict)
				return
			}
			ctx.JSON(http.StatusOK, check)
		}).
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				log.Printf("[CreateBooking] error: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err, MSG_INVALID_BODY)})
				return
			}
			booking, err := bookings.Create(ctx, body)
			if err != nil {
				abortWithError(ctx, err, "Failed to create booking", http.StatusConflict)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"success": true,
				"message": MSG_BOOKING_SUBMITTED,
				"booking": booking,
			})
		})
	return g
}

func bookingHandlers(g *gin.RouterGroup, bookings *services.BookingService) *gin.RouterGroup {
	g.
		GET("/bookings", func(ctx *gin.Context) {
			list, err := bookings.List(ctx)
			if err != nil {
				abortWithError(ctx, err, "Failed to fetch bookings", http.StatusConflict)
				return
			}
			ctx.JSON(http.StatusOK, list)
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := bookings.Get(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err, "Failed to fetch booking", http.StatusConflict)
				return
			}
			ctx.JSON(http.StatusOK, booking)
		}).
		PATCH("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateBookingStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				log.Printf("[UpdateBooking] error: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err, MSG_INVALID_BODY)})
				return
			}
			booking, err := bookings.UpdateStatus(ctx, params.ID, body)
			if err != nil {
				abortWithError(ctx, err, "Failed to update booking", http.StatusConflict)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
		})
	return g
}
