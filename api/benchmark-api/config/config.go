package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ClientConfig carries the benchmark's command-line settings.
type ClientConfig struct {
	SquadQuestionsJSON string `mapstructure:"squad_questions_json" validate:"required"`
	SquadDatasetJSON   string `mapstructure:"squad_dataset_json" validate:"required"`
	SpeechSquadURI     string `mapstructure:"speech_squad_uri" validate:"required"`
	NumIterations      int    `mapstructure:"num_iterations" validate:"gt=0"`
	// -1 derives the channel count from the per-process parallelism.
	ChannelNum int `mapstructure:"channel_num"`
	// Microseconds between successive stream launches; -1 spreads the
	// parallel streams uniformly across one chunk period.
	OffsetDuration      int64 `mapstructure:"offset_duration"`
	TrueConcurrency     bool  `mapstructure:"true_concurrency"`
	NumParallelRequests int   `mapstructure:"num_parallel_requests" validate:"gt=0"`
	ChunkDurationMs     int   `mapstructure:"chunk_duration_ms" validate:"gt=0"`
	ExecutorCount       int   `mapstructure:"executor_count" validate:"gte=0"`
	PrintResults        bool  `mapstructure:"print_results"`

	OutputRootFolder       string `mapstructure:"output_root_folder"`
	QuestionOutputFilename string `mapstructure:"question_output_filename"`
	AnswerOutputFilename   string `mapstructure:"answer_output_filename"`
	OutputWaveFilename     string `mapstructure:"output_wave_filename"`

	LanguageCode string `mapstructure:"language_code"`
	LogLevel     string `mapstructure:"log_level"`
}

// Load parses command-line flags and validates the result.
func Load(args []string) (*ClientConfig, error) {
	flags := pflag.NewFlagSet("speechsquad-client", pflag.ContinueOnError)
	flags.String("squad_questions_json", "questions.json", "json manifest with the audio file of each squad question")
	flags.String("squad_dataset_json", "dev-v2.0.json", "json file with the squad dataset")
	flags.String("speech_squad_uri", "localhost:50051", "uri of the speech squad server")
	flags.Int("num_iterations", 1, "number of times to loop over the audio files")
	flags.Int("channel_num", -1, "number of grpc channels to create, -1 derives it from the parallelism")
	flags.Int64("offset_duration", -1, "minimum time offset in microseconds between the launch of successive streams")
	flags.Bool("true_concurrency", true, "hold a slot until the stream fully completes instead of until upload finishes")
	flags.Int("num_parallel_requests", 1, "number of parallel streams to keep in flight")
	flags.Int("chunk_duration_ms", 800, "audio chunk duration in milliseconds")
	flags.Int("executor_count", 0, "number of threads for streaming i/o, 0 detects the hardware concurrency")
	flags.Bool("print_results", true, "write the recognized questions, answers and synthesized audio")
	flags.String("output_root_folder", "./final_results", "folder for the returned audio and the result json files")
	flags.String("question_output_filename", "squad_question.json", "questions file, stored within --output_root_folder")
	flags.String("answer_output_filename", "squad_answers.json", "answers file, stored within --output_root_folder")
	flags.String("output_wave_filename", "squad_output_wave.json", "tts output and latency file, stored within --output_root_folder")
	flags.String("language_code", "en-US", "language code sent with every stream configuration")
	flags.String("log_level", "info", "minimum log level")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	var config ClientConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshalling client config: %w", err)
	}
	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("validating client config: %w", err)
	}
	return &config, nil
}

// ChannelCount resolves --channel_num for the per-process parallelism:
// roughly one channel per hundred concurrent streams, plus one.
func (c *ClientConfig) ChannelCount(parallelRequests int) int {
	if c.ChannelNum == -1 {
		return parallelRequests/100 + 1
	}
	return c.ChannelNum
}

// OffsetDurationMicros resolves --offset_duration: by default the parallel
// streams are spread uniformly across one chunk period.
func (c *ClientConfig) OffsetDurationMicros(parallelRequests int) int64 {
	if c.OffsetDuration == -1 {
		return int64(c.ChunkDurationMs) * 1000 / int64(parallelRequests)
	}
	return c.OffsetDuration
}
