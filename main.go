package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Suneetha610/student/config"
	"github.com/Suneetha610/student/database"
	"github.com/Suneetha610/student/database/model"
	"github.com/Suneetha610/student/logger"
	"github.com/Suneetha610/student/web"
	"github.com/Suneetha610/student/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}

	if err := database.InitDB(config.GetDBPath()); err != nil {
		log.Fatal(err)
	}

	server := web.NewServer(settings)
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer(settings)
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func resetSetting() {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}
	if err := settingService.ResetSettings(); err != nil {
		fmt.Println("reset setting failed:", err)
	} else {
		fmt.Println("reset setting success")
	}
}

func createSuperStudent(rollNo, name, email, password string) {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println(err)
		return
	}

	student := &model.Student{
		RollNo:      rollNo,
		Name:        name,
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if email != "" {
		student.Email = &email
	}

	studentService := service.StudentService{}
	if err := studentService.CreateSuperStudent(student, password); err != nil {
		fmt.Println("create super student failed:", err)
	} else {
		fmt.Println("super student", rollNo, "created")
	}
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "student",
		Short: "Student feedback portal",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	settingCmd := &cobra.Command{
		Use:   "setting",
		Short: "Manage stored settings",
	}
	var reset bool
	settingCmd.Flags().BoolVar(&reset, "reset", false, "reset all settings to defaults")
	settingCmd.Run = func(cmd *cobra.Command, args []string) {
		if reset {
			resetSetting()
		} else {
			_ = cmd.Help()
		}
	}

	superCmd := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Create a staff account",
	}
	var rollNo, name, email, password string
	superCmd.Flags().StringVar(&rollNo, "rollno", "", "roll number")
	superCmd.Flags().StringVar(&name, "name", "", "full name")
	superCmd.Flags().StringVar(&email, "email", "", "email address")
	superCmd.Flags().StringVar(&password, "password", "", "password")
	superCmd.Run = func(cmd *cobra.Command, args []string) {
		if rollNo == "" || password == "" {
			fmt.Println("rollno and password are required")
			return
		}
		createSuperStudent(rollNo, name, email, password)
	}

	rootCmd.AddCommand(settingCmd, superCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
