package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "lecturer-claims-service/internal/adapter/http"
	mw "lecturer-claims-service/internal/adapter/middleware"
	"lecturer-claims-service/internal/adapter/repository/mysql"
	"lecturer-claims-service/internal/config"
	claimDomain "lecturer-claims-service/internal/domain/claim"
	userDomain "lecturer-claims-service/internal/domain/user"
	"lecturer-claims-service/internal/infrastructure/cache"
	"lecturer-claims-service/internal/infrastructure/db"
	approvaluc "lecturer-claims-service/internal/usecase/approval"
	claimuc "lecturer-claims-service/internal/usecase/claim"
	reportuc "lecturer-claims-service/internal/usecase/report"
	useruc "lecturer-claims-service/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&userDomain.User{}, &claimDomain.Claim{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := mysql.NewUserRepository(gdb)
	claimRepo := mysql.NewClaimRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	claimUC := claimuc.NewUsecase(userRepo, claimRepo, guow)
	approvalUC := approvaluc.NewUsecase(userRepo, claimRepo, guow)
	userUC := useruc.NewUsecase(userRepo)
	reportUC := reportuc.NewUsecase(userRepo, claimRepo)

	h := httpadp.NewHandler()
	claimH := httpadp.NewClaimHandler(claimUC)
	approvalH := httpadp.NewApprovalHandler(approvalUC)
	userH := httpadp.NewUserHandler(userUC, claimUC)
	reportH := httpadp.NewReportHandler(reportUC)
	docH := httpadp.NewDocumentHandler(rdb, time.Duration(cfg.DocRefTTLSecs)*time.Second)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("",
		mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second),
		mw.ActorMiddleware(userRepo),
	)

	lecturer := api.Group("", mw.RequireRoles(userDomain.RoleLecturer))
	lecturer.POST("/claims", claimH.SubmitClaim)
	lecturer.GET("/claims", claimH.MyClaims)
	lecturer.POST("/documents", docH.RegisterDocument)

	api.GET("/claims/:claim_id", claimH.GetClaim)
	api.GET("/dashboard", reportH.Dashboard)

	reviewer := api.Group("", mw.RequireRoles(userDomain.RoleCoordinator, userDomain.RoleManager))
	reviewer.POST("/claims/:claim_id/approve", approvalH.ApproveClaim)
	reviewer.POST("/claims/:claim_id/reject", approvalH.RejectClaim)
	reviewer.GET("/approvals/history", approvalH.History)

	review := api.Group("", mw.RequireRoles(userDomain.RoleCoordinator, userDomain.RoleManager, userDomain.RoleHR))
	review.GET("/approvals/pending", approvalH.Pending)
	review.GET("/users/:user_id/claims", userH.UserClaims)

	hr := api.Group("", mw.RequireRoles(userDomain.RoleHR))
	hr.POST("/users", userH.CreateUser)
	hr.GET("/users", userH.ListUsers)
	hr.GET("/users/:user_id", userH.GetUser)
	hr.PUT("/users/:user_id", userH.UpdateUser)
	hr.DELETE("/users/:user_id", userH.DeactivateUser)
	hr.DELETE("/claims/:claim_id", claimH.DeleteClaim)
	hr.GET("/reports/claims", reportH.ClaimsReport)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
