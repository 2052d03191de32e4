package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/estruturasvale/sige-backend-go/internal/config"
	appHTTP "github.com/estruturasvale/sige-backend-go/internal/handler/http"
	"github.com/estruturasvale/sige-backend-go/internal/pkg/database"
	"github.com/estruturasvale/sige-backend-go/internal/pkg/jwt"
	"github.com/estruturasvale/sige-backend-go/internal/repository/postgresql"
	authService "github.com/estruturasvale/sige-backend-go/internal/service/auth"
	costService "github.com/estruturasvale/sige-backend-go/internal/service/cost"
	employeeService "github.com/estruturasvale/sige-backend-go/internal/service/employee"
	scheduleService "github.com/estruturasvale/sige-backend-go/internal/service/schedule"
	tenantService "github.com/estruturasvale/sige-backend-go/internal/service/tenant"
	timesheetService "github.com/estruturasvale/sige-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	standardScheduleRepo := postgresql.NewStandardScheduleRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	mealRepo := postgresql.NewMealRepository(db)
	vehicleExpenseRepo := postgresql.NewVehicleExpenseRepository(db)
	otherCostRepo := postgresql.NewOtherCostRepository(db)
	tenantRepo := postgresql.NewTenantRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	weekStart, err := timesheetService.ParseWeekStart(cfg.Engine.WeekStartsOn)
	if err != nil {
		log.Fatal("Invalid WEEK_STARTS_ON:", err)
	}

	scheduleResolver, err := scheduleService.NewResolver(scheduleRepo, standardScheduleRepo, employeeRepo, cfg.Engine)
	if err != nil {
		log.Fatal("Failed to initialize schedule resolver:", err)
	}

	tenantResolver := tenantService.NewResolver(tenantRepo)
	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, scheduleRepo)
	timesheetSvc := timesheetService.NewTimesheetService(
		punchRepo,
		employeeRepo,
		siteRepo,
		mealRepo,
		otherCostRepo,
		scheduleResolver,
		postgresql.NewTxRunner(db),
		weekStart,
	)
	costSvc := costService.NewCostService(
		siteRepo,
		punchRepo,
		employeeRepo,
		mealRepo,
		vehicleExpenseRepo,
		otherCostRepo,
		scheduleResolver,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, tenantResolver)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc, tenantResolver)
	kpiHandler := appHTTP.NewKPIHandler(timesheetSvc, tenantResolver)
	costHandler := appHTTP.NewCostHandler(costSvc, tenantResolver)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		timesheetHandler,
		kpiHandler,
		costHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
