package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/darasa/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/subject"
	avatarsvc "github.com/trezcool/darasa/services/avatar"
	logsvc "github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/mongodb"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	// a bad store configuration is loud but does not stop the listener;
	// store failures then surface per-request.
	if err := conf.Check(); err != nil {
		logger.Error(fmt.Sprintf("configuration: %v", err), err)
	}

	// set up DB
	db, err := mongodb.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Disconnect(context.Background()); err != nil {
			dbLogger.Error(fmt.Sprintf("disconnecting: %v", err), err)
		}
	}()
	go mongodb.Probe(db, conf, dbLogger)

	// set up services
	studentRepo := mongodb.NewStudentRepository(db, conf)
	subjectRepo := mongodb.NewSubjectRepository(db, conf)
	assignmentRepo := mongodb.NewAssignmentRepository(db, conf)

	avatarSvc := avatarsvc.NewService(conf, logger)
	assignmentSvc := assignment.NewService(assignmentRepo)
	subjectSvc := subject.NewService(subjectRepo, assignmentRepo)
	studentSvc := student.NewService(studentRepo, subjectRepo, avatarSvc, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("%s initializing : env %s", conf.AppName, conf.Env))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			StudentSvc:    studentSvc,
			SubjectSvc:    subjectSvc,
			AssignmentSvc: assignmentSvc,
			AvatarSvc:     avatarSvc,
			Validate:      validate,
			Translator:    translator,
		},
	)

	go server.Start()
	logger.Info(fmt.Sprintf("server listening on %s", conf.ServerAddress()))

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
