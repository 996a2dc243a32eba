package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulseboard/feedback-api/api"
	"github.com/pulseboard/feedback-api/external/inference"
	"github.com/pulseboard/feedback-api/external/lottie"
	"github.com/pulseboard/feedback-api/schema"
	"github.com/pulseboard/feedback-api/sentiment"
	"github.com/pulseboard/feedback-api/store"
	"github.com/pulseboard/feedback-api/utils"
)

func initConfig(file string) {
	_ = godotenv.Load()

	viper.SetConfigFile(file)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("feedback")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("mongo.conn_uri", "mongodb://localhost:27017/")
	viper.SetDefault("mongo.database", "feedback_db")
	viper.SetDefault("auth.default_admin_password", "admin")
	viper.SetDefault("sentiment.timeout_seconds", 10)
	viper.SetDefault("sentiment.neutral_label", sentiment.DefaultNeutralLabel)
	viper.SetDefault("sentiment.label_scores", map[string]interface{}{
		"POSITIVE": 1.0,
		"NEGATIVE": -1.0,
		"NEUTRAL":  0.0,
	})

	if err := viper.ReadInConfig(); err != nil {
		log.WithError(err).Warn("unable to read config file, using defaults and environment")
	}
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		logLevel = log.InfoLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

// labelScores turns the configured label mapping into the analyzer's table.
// The mapping is deployment data since classifier vocabularies differ
// between model versions.
func labelScores() map[string]float64 {
	scores := make(map[string]float64)
	for label, value := range viper.GetStringMap("sentiment.label_scores") {
		scores[strings.ToUpper(label)] = cast.ToFloat64(value)
	}

	return scores
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "configuration file")
	flag.Parse()

	initConfig(configFile)
	initLog()

	if err := utils.InitI18NBundle(); err != nil {
		log.WithError(err).Fatal("fail to load i18n bundle")
	}

	connURI := viper.GetString("mongo.conn_uri")
	database := viper.GetString("mongo.database")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.NewClient(options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("create mongo client")
	}
	if err := mongoClient.Connect(ctx); err != nil {
		log.WithError(err).Fatal("connect mongo database")
	}

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("create mongo indexes")
	}

	mongoStore := store.NewMongoStore(mongoClient, database)

	if err := mongoStore.EnsureAdminAccount(viper.GetString("auth.default_admin_password")); err != nil {
		log.WithError(err).Fatal("ensure default admin account")
	}

	classifier := inference.New(
		viper.GetString("sentiment.endpoint"),
		viper.GetString("sentiment.token"),
		time.Duration(viper.GetInt("sentiment.timeout_seconds"))*time.Second,
	)
	analyzer := sentiment.NewAnalyzer(classifier, labelScores(), viper.GetString("sentiment.neutral_label"))

	assets := lottie.New(10 * time.Second)

	server := api.NewServer(mongoStore, analyzer, assets, viper.GetBool("server.trace"))

	log.WithField("address", viper.GetString("server.address")).Info("starting feedback api")
	if err := server.Run(viper.GetString("server.address")); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
