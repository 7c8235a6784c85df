package handlers

import (
	"salesapp/internal/config"
	"salesapp/internal/pdf"
	"salesapp/internal/services"
	"salesapp/internal/session"
)

type Deps struct {
	AuthHandler     *AuthHandler
	CustomerHandler *CustomerHandler
	ProfileHandler  *ProfileHandler
}

func NewDeps(cfg config.Config, users services.UserStore, customers services.CustomerStore,
	auth *services.AuthService, tokens *session.Signer, engine pdf.Engine) *Deps {

	custSvc := services.NewCustomerService(customers)
	profSvc := services.NewProfileService(users, pdf.NewExporter(engine, cfg.PDFDir))

	return &Deps{
		AuthHandler:     &AuthHandler{Auth: auth, Tokens: tokens},
		CustomerHandler: &CustomerHandler{Customers: custSvc},
		ProfileHandler:  &ProfileHandler{Profile: profSvc, PDFDir: cfg.PDFDir},
	}
}
