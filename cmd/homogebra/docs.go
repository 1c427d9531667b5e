package main

// General API documentation for swaggo. Regenerate with `swag init -g cmd/homogebra/docs.go -o internal/httpapi/docs`.
//
// @title           homogebra API
// @version         1.0
// @description     HTTP API for a dynamic-geometry scene of points, lines and conics.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
