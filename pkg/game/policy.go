package game

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/playbits/termsnake/pkg/config"
)

// The policy network is trained on the default board size only. Four
// input planes (head, body, food, walls) in row-major order, four output
// logits in Direction order (up, down, left, right).
const featurePlanes = 4

type predictRequest struct {
	input []float32
	res   chan []float32
}

var (
	// Single queue shared by every game session; one worker owns the
	// session and its tensors, so inference never races.
	predictionQueue = make(chan predictRequest, 64)
	policyOnce      sync.Once
	policyErr       error
)

// onnxPolicy encapsulates the inference session and its bound tensors.
type onnxPolicy struct {
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

// StartPolicyService initializes the ONNX runtime, loads the policy
// model and starts the lone inference worker. Safe to call from every
// session; only the first call does work. An error means no policy is
// available and callers should stay on the greedy pilot.
func StartPolicyService(modelPath string) error {
	policyOnce.Do(func() {
		if policyErr = initRuntime(); policyErr != nil {
			return
		}
		var policy *onnxPolicy
		if policy, policyErr = loadPolicy(modelPath); policyErr != nil {
			return
		}
		go func() {
			for req := range predictionQueue {
				req.res <- policy.predict(req.input)
			}
		}()
	})
	return policyErr
}

// PredictPolicy queues one inference and waits for the result. Only call
// after StartPolicyService returned nil.
func PredictPolicy(input []float32) []float32 {
	res := make(chan []float32, 1)
	predictionQueue <- predictRequest{input: input, res: res}
	return <-res
}

func loadPolicy(modelPath string) (*onnxPolicy, error) {
	inputShape := ort.NewShape(1, featurePlanes, config.DefaultHeight, config.DefaultWidth)
	inputData := make([]float32, featurePlanes*config.DefaultHeight*config.DefaultWidth)
	inputTensor, err := ort.NewTensor(inputShape, inputData)
	if err != nil {
		return nil, err
	}

	outputShape := ort.NewShape(1, 4)
	outputTensor, err := ort.NewTensor(outputShape, make([]float32, 4))
	if err != nil {
		return nil, err
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, err
	}
	defer options.Destroy()

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor}, options)
	if err != nil {
		return nil, err
	}

	return &onnxPolicy{session: session, input: inputTensor, output: outputTensor}, nil
}

func (p *onnxPolicy) predict(input []float32) []float32 {
	copy(p.input.GetData(), input)
	_ = p.session.Run()

	// Copy out so the caller never aliases the worker's output tensor.
	out := p.output.GetData()
	res := make([]float32, len(out))
	copy(res, out)
	return res
}

// initRuntime locates the onnxruntime shared library and initializes
// the environment. Runs at most once, guarded by policyOnce.
func initRuntime() error {
	possiblePaths := []string{
		"/opt/homebrew/opt/onnxruntime/lib/libonnxruntime.dylib", // Apple Silicon Homebrew
		"/usr/local/opt/onnxruntime/lib/libonnxruntime.dylib",    // Intel Homebrew
		"/usr/local/lib/libonnxruntime.dylib",                    // Manual install
	}
	if runtime.GOOS == "linux" {
		possiblePaths = []string{
			"/usr/lib/libonnxruntime.so",
			"/usr/local/lib/libonnxruntime.so",
		}
	}

	var foundPath string
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			foundPath = path
			break
		}
	}
	if foundPath == "" {
		return fmt.Errorf("onnxruntime library not found; install it first (e.g. 'brew install onnxruntime')")
	}

	ort.SetSharedLibraryPath(foundPath)
	return ort.InitializeEnvironment()
}

// featureGrid flattens the board into the CHW float planes the policy
// expects. Only valid when the board matches the trained size.
func (g *Game) featureGrid() []float32 {
	grid := make([]float32, featurePlanes*g.height*g.width)
	plane := func(n int, p Point) {
		grid[n*g.height*g.width+p.Y*g.width+p.X] = 1
	}

	body := g.snake.Body()
	plane(0, body[0])
	for _, p := range body[1:] {
		plane(1, p)
	}
	plane(2, g.food)
	for x := 0; x < g.width; x++ {
		plane(3, Point{X: x, Y: 0})
		plane(3, Point{X: x, Y: g.height - 1})
	}
	for y := 0; y < g.height; y++ {
		plane(3, Point{X: 0, Y: y})
		plane(3, Point{X: g.width - 1, Y: y})
	}
	return grid
}

// NeuralPilot asks the ONNX policy for a move and falls back to the
// greedy pilot whenever the runtime or model is unavailable, the board
// is not the trained size, or the suggested move is unsafe.
type NeuralPilot struct {
	fallback *GreedyPilot
	ready    bool
}

// NewNeuralPilot loads the policy service once and wires the greedy
// fallback. Construction never fails; a missing model just means the
// fallback does all the flying.
func NewNeuralPilot(modelPath string, seed int64) *NeuralPilot {
	p := &NeuralPilot{fallback: NewGreedyPilot(seed)}
	if err := StartPolicyService(modelPath); err == nil {
		p.ready = true
	}
	return p
}

// NextDirection returns the policy's argmax move when it is legal and
// safe, otherwise defers to the greedy pilot.
func (p *NeuralPilot) NextDirection(g *Game) (Direction, bool) {
	if !p.ready || g.width != config.DefaultWidth || g.height != config.DefaultHeight {
		return p.fallback.NextDirection(g)
	}

	logits := PredictPolicy(g.featureGrid())
	best := 0
	for i, v := range logits {
		if v > logits[best] {
			best = i
		}
	}
	d := Direction(best)

	if d == g.snake.Direction().Opposite() {
		return p.fallback.NextDirection(g)
	}
	dx, dy := d.Delta()
	head := g.snake.Head()
	if !g.isSafe(Point{X: head.X + dx, Y: head.Y + dy}) {
		return p.fallback.NextDirection(g)
	}
	return d, true
}
