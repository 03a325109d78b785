package handlers

// @title Match Predict API
// @version 1.0
// @description Mock action predictions for football video tagging

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @tag.name predictions
// @tag.description Action prediction operations

// @tag.name health
// @tag.description Service health
