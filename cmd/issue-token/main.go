// issue-token emite un JWT para operar las rutas protegidas del catálogo.
//
// Uso: go run ./cmd/issue-token [subject] [role]
// Por defecto subject "operador" y role "admin". El secreto, el emisor y la
// expiración se leen de JWT_SECRET, JWT_ISSUER y JWT_EXPIRATION_MINUTES.
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/tradechain-api/pkg/config"
	"github.com/jhoicas/tradechain-api/pkg/jwt"
)

func main() {
	subject, role := "operador", jwt.RoleAdmin
	if len(os.Args) > 1 {
		subject = os.Args[1]
	}
	if len(os.Args) > 2 {
		role = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	token, err := jwt.Generate(cfg.JWT.Secret, subject, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
