package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"linecount/mapreduce/engine"
	"linecount/pipeline"
	"linecount/protogen/job"
	"linecount/staging"
	"linecount/utils"
)

const pollInterval = 500 * time.Millisecond

func printUsage() {
	fmt.Printf(`Usage of %s: %s [OPTIONS] <input_dir> <output_file>

Counts the lines of every file in <input_dir> and writes one report line
per file to <output_file>: "<filename>"<TAB><count>, sorted by filename.

Options:
  -blockers <n>        Blocker issue count reported by the analysis gate;
                       the job only runs when it is 0 (default 0).
  -stage <dir>         Stage all files under <dir> into <input_dir> first,
                       flattened to base names (later files win collisions).
  -coordinator <addr>  Submit the job to a coordinator instead of running
                       it in-process.
  -no-combiner         Disable per-worker pre-aggregation (in-process mode).

Exit codes: 0 success, 1 job failure, -1 malformed invocation.
`, os.Args[0], os.Args[0])
}

func main() {
	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	blockers := flagSet.Int("blockers", 0, "Blocker issue count from the analysis gate")
	stageDir := flagSet.String("stage", "", "Stage files from this directory into the input dir first")
	coordinatorAddr := flagSet.String("coordinator", "", "Coordinator address; empty runs the job in-process")
	noCombiner := flagSet.Bool("no-combiner", false, "Disable per-worker pre-aggregation")
	flagSet.Usage = printUsage
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		os.Exit(-1)
	}

	args := flagSet.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "expected exactly 2 arguments: <input_dir> <output_file>")
		printUsage()
		os.Exit(-1)
	}
	inputDir, outputPath := args[0], args[1]

	decision, err := pipeline.Decide(*blockers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	if !decision.Open() {
		// Gate closed: the job is not invoked at all and no output is
		// produced. This is not a job failure.
		fmt.Printf("analysis gate closed (%d blocker issues), job not submitted\n", decision.BlockerIssues())
		os.Exit(0)
	}

	if *stageDir != "" {
		staged, err := staging.StageTree(*stageDir, inputDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "staging failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("staged %d files into %s\n", len(staged), inputDir)
	}

	if *coordinatorAddr != "" {
		err = submit(*coordinatorAddr, inputDir, outputPath)
	} else {
		err = engine.Run(inputDir, outputPath, engine.Options{
			DisableCombiner: *noCombiner,
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "job failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("report written to %s\n", outputPath)
}

// submit hands the job to a coordinator and polls until it reaches a
// terminal state.
func submit(coordinatorAddr, inputDir, outputPath string) error {
	resp, err := utils.SendSingleRequest(coordinatorAddr, &job.SubmitJob{
		InputDir:   inputDir,
		OutputPath: outputPath,
	})
	if err != nil {
		return fmt.Errorf("submit to %s: %w", coordinatorAddr, err)
	}
	submitted, ok := resp.(*job.SubmitJobResponse)
	if !ok {
		return fmt.Errorf("unexpected submit response type: %T", resp)
	}
	fmt.Printf("job %s submitted\n", submitted.JobId)

	for {
		time.Sleep(pollInterval)
		resp, err := utils.SendSingleRequest(coordinatorAddr, &job.JobStatusRequest{
			JobId: submitted.JobId,
		})
		if err != nil {
			return fmt.Errorf("poll job %s: %w", submitted.JobId, err)
		}
		status, ok := resp.(*job.JobStatusResponse)
		if !ok {
			return fmt.Errorf("unexpected status response type: %T", resp)
		}
		switch status.State {
		case "COMPLETED":
			fmt.Printf("job %s completed, artifact md5 %s\n", status.JobId, status.ArtifactChecksum)
			return nil
		case "FAILED":
			return fmt.Errorf("job %s failed: %s", status.JobId, status.ErrorMessage)
		}
	}
}
