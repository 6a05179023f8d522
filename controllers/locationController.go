package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

const msgLocationAPIFailed = "BD API failed"

func locationAPIBase() string {
	if base := os.Getenv("BD_LOCATIONS_API"); base != "" {
		return base
	}
	return "https://bdapis.com/api"
}

func proxyLocationRequest(ctx *gin.Context, url string) {
	resp, err := resty.New().R().
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil || resp.StatusCode() != http.StatusOK {
		log.Printf("Location API error: %v, url: %s", err, url)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgLocationAPIFailed)
		return
	}

	ctx.Data(http.StatusOK, "application/json", resp.Body())
}

// The storefront delegates geographic lookups to an external data
// service and forwards its responses untouched.

func GetDivisions(ctx *gin.Context) {
	proxyLocationRequest(ctx, locationAPIBase()+"/v1.1/divisions")
}

func GetDistricts(ctx *gin.Context) {
	proxyLocationRequest(ctx, locationAPIBase()+"/v1.1/division/"+ctx.Param("division"))
}

func GetUpazilas(ctx *gin.Context) {
	proxyLocationRequest(ctx, locationAPIBase()+"/v1.2/division/"+ctx.Param("division"))
}
