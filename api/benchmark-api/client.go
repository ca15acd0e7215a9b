// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package benchmark_api generates paced speech squad load: a driver keeps a
// fixed number of streams in flight and advances each at its scheduled
// wall-clock deadline, while a reaper drains completed streams and folds
// their latencies into the process statistics.
package benchmark_api

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"

	"github.com/rapidaai/speechsquad/api/benchmark-api/config"
	internal_audio "github.com/rapidaai/speechsquad/api/benchmark-api/internal/audio"
	internal_coordinator "github.com/rapidaai/speechsquad/api/benchmark-api/internal/coordinator"
	internal_dataset "github.com/rapidaai/speechsquad/api/benchmark-api/internal/dataset"
	internal_task "github.com/rapidaai/speechsquad/api/benchmark-api/internal/task"
	"github.com/rapidaai/speechsquad/pkg/commons"
	"github.com/rapidaai/speechsquad/pkg/utils"
	"github.com/rapidaai/speechsquad/protos"
)

// NewSingleProcessCoordinator returns a Coordinator for a single, unsharded
// benchmark process (rank 0 of size 1).
func NewSingleProcessCoordinator() internal_coordinator.Coordinator {
	return internal_coordinator.NewSingleProcess()
}

const clientLatencyLabel = "Client Latency"

// channelReadinessTimeout bounds the startup wait per channel.
const channelReadinessTimeout = 10 * time.Second

// ErrMidRun marks a fatal failure after load generation began; the process
// exits with a distinct code so harnesses can tell it from a config error.
var ErrMidRun = errors.New("failed to generate specified load")

type channelSlot struct {
	conn     *grpc.ClientConn
	inflight atomic.Int64
}

// BenchmarkClient owns one process's share of the load.
type BenchmarkClient struct {
	logger commons.Logger
	cfg    *config.ClientConfig
	coord  internal_coordinator.Coordinator

	parallelRequests int
	offsetDuration   int64 // microseconds

	channels []*channelSlot
	catalog  *internal_dataset.QuestionCatalog
	output   *internal_task.OutputFilestreams

	// Written by the reaper, read by the driver after the reaper joins.
	responseLatencies   []float64
	componentTimings    map[string][]float64
	averageLatency      map[string]float64
	totalAudioProcessed float64
	failedCount         int
}

// New dials the server channels, loads the squad dataset and opens the
// output files. Every failure here is a configuration or load error.
func New(ctx context.Context, logger commons.Logger, cfg *config.ClientConfig, coord internal_coordinator.Coordinator, outputRoot string) (*BenchmarkClient, error) {
	parallel := internal_coordinator.SplitParallelRequests(cfg.NumParallelRequests, coord.Rank(), coord.Size())

	c := &BenchmarkClient{
		logger:           logger,
		cfg:              cfg,
		coord:            coord,
		parallelRequests: parallel,
		offsetDuration:   cfg.OffsetDurationMicros(parallel),
		componentTimings: make(map[string][]float64),
		averageLatency:   make(map[string]float64),
	}
	for _, component := range internal_task.ExpectedComponents() {
		c.componentTimings[component] = nil
		c.averageLatency[component] = 0
	}
	c.averageLatency[clientLatencyLabel] = 0

	channelCount := cfg.ChannelCount(parallel)
	for i := 0; i < channelCount; i++ {
		conn, err := utils.DialInsecure(cfg.SpeechSquadURI)
		if err != nil {
			c.closeChannels()
			return nil, err
		}
		readyCtx, cancel := context.WithTimeout(ctx, channelReadinessTimeout)
		err = utils.WaitUntilReady(readyCtx, conn, cfg.SpeechSquadURI)
		cancel()
		if err != nil {
			conn.Close()
			c.closeChannels()
			return nil, err
		}
		c.channels = append(c.channels, &channelSlot{conn: conn})
	}

	catalog, err := internal_dataset.LoadCatalog(cfg.SquadDatasetJSON)
	if err != nil {
		c.closeChannels()
		return nil, err
	}
	c.catalog = catalog

	if cfg.PrintResults {
		output, err := internal_task.NewOutputFilestreams(
			outputRoot, cfg.QuestionOutputFilename, cfg.AnswerOutputFilename, cfg.OutputWaveFilename)
		if err != nil {
			c.closeChannels()
			return nil, err
		}
		c.output = output
	}
	return c, nil
}

// Close releases the channels and finishes the output files.
func (c *BenchmarkClient) Close() error {
	c.closeChannels()
	if c.output != nil {
		return c.output.Close()
	}
	return nil
}

func (c *BenchmarkClient) closeChannels() {
	for _, slot := range c.channels {
		slot.conn.Close()
	}
	c.channels = nil
}

// openStream picks the less-loaded of two random channels and starts one
// inference stream on it.
func (c *BenchmarkClient) openStream(ctx context.Context) (protos.SpeechSquadService_SpeechSquadInferClient, func(), error) {
	slot := c.channels[0]
	if len(c.channels) > 1 {
		n := len(c.channels)
		r1 := rand.Intn(n)
		r2 := rand.Intn(n - 1)
		if r2 >= r1 {
			r2++
		}
		slot = c.channels[r1]
		if c.channels[r2].inflight.Load() < slot.inflight.Load() {
			slot = c.channels[r2]
		}
	}
	slot.inflight.Add(1)
	var once sync.Once
	release := func() {
		once.Do(func() { slot.inflight.Add(-1) })
	}

	stream, err := protos.NewSpeechSquadServiceClient(slot.conn).SpeechSquadInfer(ctx)
	if err != nil {
		release()
		return nil, nil, err
	}
	return stream, release, nil
}

// loadClips reads every manifest entry and keeps the clips the greedy
// least-bytes partition assigns to this peer.
func (c *BenchmarkClient) loadClips(refs []internal_dataset.QuestionRef) ([]*internal_audio.Clip, error) {
	size := c.coord.Size()
	if size < 1 {
		size = 1
	}
	allocatedBytes := make([]int64, size)

	var mine []*internal_audio.Clip
	for _, ref := range refs {
		clip, err := internal_audio.LoadClip(ref.AudioPath, ref.QuestionID)
		if err != nil {
			return nil, err
		}
		index := internal_coordinator.LeastLoadedIndex(allocatedBytes)
		allocatedBytes[index] += int64(len(clip.Data))
		if index == c.coord.Rank() {
			mine = append(mine, clip)
		}
	}
	return mine, nil
}

// Run generates the load and prints the per-process and aggregated reports.
func (c *BenchmarkClient) Run(ctx context.Context) error {
	rank, size := c.coord.Rank(), c.coord.Size()

	if err := c.coord.Barrier(ctx); err != nil {
		return err
	}
	if rank == 0 {
		fmt.Println("Loading eval dataset...")
	}

	refs, err := internal_dataset.ParseQuestionsJSON(c.cfg.SquadQuestionsJSON)
	if err != nil {
		return err
	}
	clips, err := c.loadClips(refs)
	if err != nil {
		return err
	}
	c.logger.Infof("loaded %d files for process %d", len(clips), rank)

	// Every peer must hold at least one clip; otherwise the partition was
	// asked to spread too few questions.
	errFlag := 0.
	if len(clips) == 0 {
		errFlag = 1.
	}
	reduced, err := c.coord.AllReduceSum(ctx, []float64{errFlag})
	if err != nil {
		return err
	}
	if reduced[0] > 0 {
		return fmt.Errorf("provide a minimum of %d questions", size)
	}

	allWavMax := len(clips) * c.cfg.NumIterations
	c.responseLatencies = make([]float64, 0, allWavMax)

	queue := make(chan *internal_task.Task, c.parallelRequests)
	var reaper sync.WaitGroup
	reaper.Add(1)
	go c.reap(queue, &reaper)

	if err := c.coord.Barrier(ctx); err != nil {
		return err
	}
	if rank == 0 {
		fmt.Println("Generating load...")
	}
	if err := c.coord.Barrier(ctx); err != nil {
		return err
	}

	startTime := time.Now()
	if err := c.drive(ctx, clips, allWavMax, queue); err != nil {
		close(queue)
		reaper.Wait()
		fmt.Printf("Failed to generate specified load. Error details: %v\n", err)
		return ErrMidRun
	}

	c.coord.Barrier(ctx)
	if rank == 0 {
		fmt.Println("Waiting for all responses...")
	}
	close(queue)
	reaper.Wait()
	c.coord.Barrier(ctx)

	endTime := time.Now()

	if rank == 0 {
		fmt.Println()
		fmt.Println("Done with measurements")
		fmt.Println("Generating Statistics Report...")
	}

	// One peer prints at a time so the blocks do not interleave.
	for i := 0; i < size; i++ {
		c.coord.Barrier(ctx)
		if i == rank {
			fmt.Printf("\t\t================ Process %d================\n", rank)
			c.printStats()
		}
		c.coord.Barrier(ctx)
	}

	return c.printFinalReport(ctx, endTime.Sub(startTime))
}

// drive is the scheduler loop: keep the task buckets full, advance each task
// at its deadline, hand completed tasks to the reaper.
func (c *BenchmarkClient) drive(ctx context.Context, clips []*internal_audio.Clip, allWavMax int, queue chan<- *internal_task.Task) error {
	curr := make([]*internal_task.Task, 0, c.parallelRequests)
	next := make([]*internal_task.Task, 0, c.parallelRequests)

	wavIndex := 0
	for {
		// The very first fill staggers by process rank so peers interleave
		// instead of bursting together.
		offsetIndex := 0
		if wavIndex == 0 {
			offsetIndex = c.coord.Rank()
		}
		now := time.Now()
		for len(curr) < c.parallelRequests && wavIndex < allWavMax {
			scheduled := now.Add(time.Duration(int64(offsetIndex)*c.offsetDuration) * time.Microsecond)
			offsetIndex++
			clip := clips[wavIndex/c.cfg.NumIterations]
			task, err := internal_task.NewTask(
				ctx, c.logger, clip, uint32(wavIndex), c.openStream,
				c.cfg.LanguageCode, c.cfg.ChunkDurationMs, c.cfg.PrintResults,
				c.catalog, c.output, scheduled,
			)
			if err != nil {
				return err
			}
			c.logger.Debugf("added a new task with id %d", wavIndex)
			curr = append(curr, task)
			wavIndex++
		}

		if len(curr) == 0 {
			return nil
		}

		for _, task := range curr {
			if time.Now().Before(task.NextTimePoint()) {
				next = append(next, task)
				continue
			}
			state := task.State()
			if state == internal_task.StateStart || state == internal_task.StateSending {
				if err := task.Step(); err != nil {
					return err
				}
			}

			state = task.State()
			handOff := false
			if c.cfg.TrueConcurrency {
				handOff = state == internal_task.StateReceivingComplete
			} else {
				handOff = state == internal_task.StateSendingComplete || state == internal_task.StateReceivingComplete
			}
			if handOff {
				queue <- task
			} else {
				next = append(next, task)
			}
		}
		curr, next = next, curr[:0]
	}
}

// reap sequentially awaits every issued task and folds its statistics into
// the process totals. It drains the queue completely regardless of failures
// so the audio and failure totals stay correct.
func (c *BenchmarkClient) reap(queue <-chan *internal_task.Task, wg *sync.WaitGroup) {
	defer wg.Done()
	for task := range queue {
		err := task.WaitForCompletion()
		c.totalAudioProcessed += task.AudioProcessed()

		failed := err != nil
		if !failed && task.Err() != nil {
			failed = true
		}
		if failed {
			c.failedCount++
			c.logger.Debugf("task %d failed: %v / %v", task.ID(), err, task.Err())
			continue
		}

		result := task.Result()
		// Only streams that actually received audio contribute latencies.
		if result.HasAudioResponse() {
			c.responseLatencies = append(c.responseLatencies, result.ResponseLatency)
			for component, value := range result.ComponentTimings {
				c.componentTimings[component] = append(c.componentTimings[component], value)
			}
		}
	}
}

func (c *BenchmarkClient) printStats() {
	components := make([]string, 0, len(c.componentTimings))
	for component := range c.componentTimings {
		components = append(components, component)
	}
	sort.Strings(components)
	for _, component := range components {
		c.printLatencies(c.componentTimings[component], component)
	}
	c.printLatencies(c.responseLatencies, clientLatencyLabel)
}

func (c *BenchmarkClient) printLatencies(latencies []float64, name string) {
	fmt.Println("-----------------------------------------------------------")
	if len(latencies) == 0 {
		return
	}
	summary := utils.Summarize(latencies)
	fmt.Printf(" %s (ms):\n", name)
	fmt.Printf("\t\tMedian\t\t90th\t\t95th\t\t99th\t\tAvg\n")
	fmt.Printf("\t\t%.5g\t\t%.5g\t\t%.5g\t\t%.5g\t\t%.5g\n",
		summary.Median, summary.P90, summary.P95, summary.P99, summary.Average)
	c.averageLatency[name] = summary.Average
}

// printFinalReport reduces the totals across peers and prints the aggregate
// on rank 0.
func (c *BenchmarkClient) printFinalReport(ctx context.Context, elapsed time.Duration) error {
	labels := make([]string, 0, len(c.averageLatency))
	for label := range c.averageLatency {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	successFlag := 0.
	if c.averageLatency[clientLatencyLabel] != 0 {
		successFlag = 1.
	}
	vector := []float64{c.totalAudioProcessed, float64(c.failedCount), successFlag}
	for _, label := range labels {
		vector = append(vector, c.averageLatency[label])
	}

	reduced, err := c.coord.AllReduceSum(ctx, vector)
	if err != nil {
		return err
	}
	c.coord.Barrier(ctx)

	if c.coord.Rank() != 0 {
		return nil
	}

	totalAudio := reduced[0]
	failed := int(reduced[1])
	successProcs := int(reduced[2])
	if successProcs < 1 {
		successProcs = 1
	}
	elapsedMs := float64(elapsed.Microseconds()) / 1000.

	fmt.Printf("\t\t================ Final Report ================\n")
	fmt.Printf("Run time: %g sec.\n", elapsedMs/1000.)
	fmt.Printf("Total audio processed: %g sec.\n", totalAudio)
	fmt.Printf("Throughput: %g RTFX\n", totalAudio*1000./elapsedMs)
	fmt.Printf("Number of failed audio clips: %d\n", failed)
	fmt.Println("Average Latencies ====> ")
	for i, label := range labels {
		fmt.Printf("\t%s:%g ms\n", label, reduced[3+i]/float64(successProcs))
	}
	return nil
}

// OutputRootFor resolves the per-process output directory: peers write under
// proc<rank> subdirectories so their wav indices never collide.
func OutputRootFor(root string, rank, size int) string {
	if size > 1 {
		return filepath.Join(root, fmt.Sprintf("proc%d", rank))
	}
	return root
}
