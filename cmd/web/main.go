// @title           Agencia API
// @version         1.0
// @description     Backend del sitio de la agencia de modelos: catálogo,
// @description     moderación y panel de administración.
// @host            localhost:3001
// @BasePath        /api/v1

package main

import "agencia_backend/internal/app"

func main() {
	app.Run()
}
