package main

import (
	"log"
	"net/http"
	"studio/src/services"
	"studio/src/types"

	"github.com/gin-gonic/gin"
)

func publicPackageHandlers(g *gin.RouterGroup, packages *services.PackageService) *gin.RouterGroup {
	g.
		GET("/packages", func(ctx *gin.Context) {
			var filters types.PackagesQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			list, err := packages.List(ctx, filters.Active)
			if err != nil {
				abortWithError(ctx, err, "Failed to fetch packages", http.StatusConflict)
				return
			}
			ctx.JSON(http.StatusOK, list)
		}).
		GET("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			pkg, err := packages.Get(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err, "Failed to fetch package", http.StatusConflict)
				return
			}
			ctx.JSON(http.StatusOK, pkg)
		})
	return g
}

func packageHandlers(g *gin.RouterGroup, packages *services.PackageService) *gin.RouterGroup {
	g.
		POST("/packages", func(ctx *gin.Context) {
			var body types.PackageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				log.Printf("[CreatePackage] error: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			pkg, err := packages.Create(ctx, body, ctx.GetString("email"))
			if err != nil {
				abortWithError(ctx, err, "Failed to create package", http.StatusConflict)
				return
			}
			ctx.JSON(http.StatusCreated, pkg)
		}).
		PUT("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.PackageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				log.Printf("[UpdatePackage] error: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			pkg, err := packages.Update(ctx, params.ID, body)
			if err != nil {
				abortWithError(ctx, err, "Failed to update package", http.StatusConflict)
				return
			}
			ctx.JSON(http.StatusOK, pkg)
		}).
		DELETE("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := packages.Delete(ctx, params.ID); err != nil {
				abortWithError(ctx, err, "Failed to delete package", http.StatusConflict)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
		})
	return g
}
