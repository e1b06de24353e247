package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/trezcool/darasa/core"
)

// Collections
const (
	studentCollection         = "students"
	subjectCollection         = "subjects"
	assignmentCollection      = "assignments"
	gradeAssignmentCollection = "grade_assignments"
)

// Open creates the client. Connections are established lazily; a down
// database only surfaces on the first store operation.
func Open(conf *core.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.Database.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.Database.URI))
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to %s", conf.Database.URI)
	}
	return client, nil
}

// Probe pings the deployment once and logs the connection state. Run it in
// its own goroutine: startup never blocks on store connectivity.
func Probe(client *mongo.Client, conf *core.Config, logger core.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.Database.ConnectTimeout)
	defer cancel()

	start := time.Now()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error(fmt.Sprintf("database unreachable at %s: %v", conf.Database.URI, err), err)
		return
	}
	logger.Info(fmt.Sprintf("database connected in %s", time.Since(start)))
}

func database(client *mongo.Client, conf *core.Config) *mongo.Database {
	return client.Database(conf.Database.Name)
}
