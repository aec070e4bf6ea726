package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "mandi-ledger-backend/internal/adapter/http"
	"mandi-ledger-backend/internal/adapter/middleware"
	"mandi-ledger-backend/internal/adapter/repository/mysql"
	"mandi-ledger-backend/internal/config"
	"mandi-ledger-backend/internal/infrastructure/cache"
	"mandi-ledger-backend/internal/infrastructure/db"
	chilliesuc "mandi-ledger-backend/internal/usecase/chillies"
	customeruc "mandi-ledger-backend/internal/usecase/customer"
	dashboarduc "mandi-ledger-backend/internal/usecase/dashboard"
	loanuc "mandi-ledger-backend/internal/usecase/loan"
	recoveryuc "mandi-ledger-backend/internal/usecase/recovery"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	customerRepo := mysql.NewCustomerRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	recoveryRepo := mysql.NewRecoveryRepository(gdb)
	chilliesRepo := mysql.NewChilliesRepository(gdb)

	dashUC := dashboarduc.NewUsecase(customerRepo, loanRepo, recoveryRepo, chilliesRepo,
		rdb, time.Duration(cfg.StatsCacheTTLSecs)*time.Second)
	customerUC := customeruc.NewUsecase(customerRepo, loanRepo, recoveryRepo)
	loanUC := loanuc.NewUsecase(loanRepo, customerRepo)
	recoveryUC := recoveryuc.NewUsecase(recoveryRepo, customerRepo)
	chilliesUC := chilliesuc.NewUsecase(chilliesRepo, customerRepo)

	h := httpadp.NewHandler()
	customerH := httpadp.NewCustomerHandler(customerUC, dashUC)
	loanH := httpadp.NewLoanHandler(loanUC, dashUC)
	recoveryH := httpadp.NewRecoveryHandler(recoveryUC, dashUC)
	chilliesH := httpadp.NewChilliesHandler(chilliesUC, dashUC)
	dashboardH := httpadp.NewDashboardHandler(dashUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.GET("/customers", customerH.ListCustomers)
	e.POST("/customers", customerH.CreateCustomer)
	e.GET("/customers/:customer_id", customerH.GetCustomer)
	e.PUT("/customers/:customer_id", customerH.UpdateCustomer)
	e.DELETE("/customers/:customer_id", customerH.DeleteCustomer)
	e.GET("/customers/:customer_id/balance", customerH.GetCustomerBalance)

	e.GET("/loans", loanH.ListLoans)
	e.POST("/loans", loanH.CreateLoan)

	e.GET("/recoveries", recoveryH.ListRecoveries)
	e.POST("/recoveries", recoveryH.CreateRecovery)

	e.GET("/chillies", chilliesH.ListTransactions)
	e.POST("/chillies", chilliesH.CreateTransaction)

	e.GET("/dashboard/stats", dashboardH.GetStats)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
