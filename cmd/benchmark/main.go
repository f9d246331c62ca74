// Benchmark tool for load-testing Harmony with synthetic clients.
//
// Usage:
//   go run cmd/benchmark/main.go -url http://localhost:8080 -count 5000
//
// This tool:
//   1. Generates synthetic wellness and wealth profiles
//   2. Sends each profile to Harmony for assessment
//   3. Tracks latency distribution, throughput, and cache hit rate
//   4. Reports the archetype and risk band distribution of the results
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// AssessRequest is the Harmony API request format.
type AssessRequest struct {
	ClientID       string             `json:"clientId"`
	WellnessScores map[string]float64 `json:"wellnessScores"`
	WealthProfile  WealthProfile      `json:"wealthProfile"`
}

// WealthProfile mirrors the API's financial profile payload.
type WealthProfile struct {
	TotalAssets     float64    `json:"totalAssets"`
	AnnualIncome    float64    `json:"annualIncome"`
	TimeHorizon     string     `json:"timeHorizon"`
	RiskAppetite    float64    `json:"riskAppetite"`
	LiquidityNeeds  float64    `json:"liquidityNeeds"`
	InvestmentGoals []string   `json:"investmentGoals"`
	Priorities      Priorities `json:"priorities"`
}

// Priorities are the five weighted priority sub-scores.
type Priorities struct {
	Growth          float64 `json:"growth"`
	Stability       float64 `json:"stability"`
	Liquidity       float64 `json:"liquidity"`
	Legacy          float64 `json:"legacy"`
	TaxOptimization float64 `json:"taxOptimization"`
}

// AssessResponse is the Harmony API response format.
type AssessResponse struct {
	AssessmentID   string `json:"assessmentId"`
	ReportID       string `json:"reportId"`
	Classification struct {
		Archetype struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"archetype"`
		Confidence int `json:"confidence"`
	} `json:"classification"`
	RiskProfile struct {
		Score          float64 `json:"score"`
		Classification string  `json:"classification"`
	} `json:"riskProfile"`
	Metadata struct {
		CacheHit bool `json:"cacheHit"`
	} `json:"metadata"`
}

// Metrics tracks benchmark results.
type Metrics struct {
	mu        sync.Mutex
	latencies []float64

	TotalProcessed int64
	TotalErrors    int64
	CacheHits      int64

	archetypes map[string]int64
	riskBands  map[string]int64
}

func (m *Metrics) record(latencyMs float64, resp *AssessResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latencies = append(m.latencies, latencyMs)
	m.archetypes[resp.Classification.Archetype.ID]++
	m.riskBands[resp.RiskProfile.Classification]++
}

var dimensions = []string{
	"financial", "physical", "emotional", "social",
	"intellectual", "occupational", "environmental", "spiritual",
}

var horizons = []string{"short", "medium", "long", "perpetual"}

var goalPool = []string{
	"Wealth Preservation",
	"Passive Income Generation",
	"Capital Growth",
	"Legacy Building",
	"Diversification",
	"Tax Optimization",
	"Impact Investing",
	"Entrepreneurial Ventures",
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Harmony base URL")
	tenantID := flag.String("tenant", "benchmark-test", "Tenant ID for requests")
	count := flag.Int("count", 1000, "Number of assessments to run")
	workers := flag.Int("workers", 10, "Number of concurrent workers")
	clients := flag.Int("clients", 0, "Distinct client pool size (0 = one per request; small pools exercise the cache)")
	seed := flag.Int64("seed", 42, "PRNG seed for reproducible profiles")
	verbose := flag.Bool("verbose", false, "Print each assessment result")
	flag.Parse()

	fmt.Println("╔═══════════════════════════════════════════════════════════════╗")
	fmt.Println("║         HARMONY BENCHMARK - Synthetic Assessment Load         ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════════╝")
	fmt.Printf("\nHarmony URL: %s\n", *baseURL)
	fmt.Printf("Tenant ID:   %s\n", *tenantID)
	fmt.Printf("Count:       %d\n", *count)
	fmt.Printf("Workers:     %d\n", *workers)
	fmt.Printf("Client Pool: %d\n", *clients)
	fmt.Printf("Seed:        %d\n", *seed)
	fmt.Println()

	if err := checkHealth(*baseURL); err != nil {
		fmt.Printf("ERROR: Harmony not reachable at %s: %v\n", *baseURL, err)
		fmt.Println("\nMake sure Harmony is running:")
		fmt.Println("  cd harmony && go run cmd/harmony/main.go")
		os.Exit(1)
	}
	fmt.Println("✓ Harmony is healthy")

	// Pre-generate the request set so workers only measure the server.
	rng := rand.New(rand.NewSource(*seed))
	requests := make([]AssessRequest, *count)
	for i := range requests {
		clientID := fmt.Sprintf("bench-client-%06d", i)
		if *clients > 0 {
			clientID = fmt.Sprintf("bench-client-%06d", i%*clients)
		}
		requests[i] = syntheticRequest(rng, clientID)
	}
	fmt.Printf("✓ Generated %d synthetic profiles\n", len(requests))

	fmt.Printf("\nRunning benchmark with %d workers...\n", *workers)
	startTime := time.Now()
	metrics := runBenchmark(requests, *baseURL, *tenantID, *workers, *verbose)
	duration := time.Since(startTime)

	printResults(metrics, duration)
}

func checkHealth(baseURL string) error {
	resp, err := http.Get(baseURL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// syntheticRequest builds a plausible random profile. Scores cluster
// around the middle of each scale the way real intake data does.
func syntheticRequest(rng *rand.Rand, clientID string) AssessRequest {
	scores := make(map[string]float64, len(dimensions))
	for _, dim := range dimensions {
		// Sum of two uniforms gives a rough bell around 50.
		scores[dim] = float64(int(rng.Float64()*50 + rng.Float64()*50))
	}

	goals := make([]string, 0, 3)
	for _, g := range rng.Perm(len(goalPool))[:1+rng.Intn(3)] {
		goals = append(goals, goalPool[g])
	}

	p := Priorities{
		Growth:          float64(rng.Intn(50)),
		Stability:       float64(rng.Intn(50)),
		Liquidity:       float64(rng.Intn(30)),
		Legacy:          float64(rng.Intn(30)),
		TaxOptimization: float64(rng.Intn(20)),
	}
	if p.Growth+p.Stability+p.Liquidity+p.Legacy+p.TaxOptimization == 0 {
		p.Growth = 1
	}

	return AssessRequest{
		ClientID:       clientID,
		WellnessScores: scores,
		WealthProfile: WealthProfile{
			TotalAssets:     float64(100_000 + rng.Intn(20_000_000)),
			AnnualIncome:    float64(50_000 + rng.Intn(2_000_000)),
			TimeHorizon:     horizons[rng.Intn(len(horizons))],
			RiskAppetite:    float64(rng.Intn(101)),
			LiquidityNeeds:  float64(rng.Intn(101)),
			InvestmentGoals: goals,
			Priorities:      p,
		},
	}
}

func runBenchmark(requests []AssessRequest, baseURL, tenantID string, numWorkers int, verbose bool) *Metrics {
	metrics := &Metrics{
		archetypes: make(map[string]int64),
		riskBands:  make(map[string]int64),
	}

	work := make(chan AssessRequest, 100)
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client := &http.Client{Timeout: 10 * time.Second}

			for req := range work {
				start := time.Now()
				result, err := assess(client, baseURL, tenantID, req)
				elapsedMs := float64(time.Since(start).Microseconds()) / 1000.0

				atomic.AddInt64(&metrics.TotalProcessed, 1)

				if err != nil {
					atomic.AddInt64(&metrics.TotalErrors, 1)
					if verbose {
						fmt.Printf("ERROR: %s -> %v\n", req.ClientID, err)
					}
					continue
				}

				if result.Metadata.CacheHit {
					atomic.AddInt64(&metrics.CacheHits, 1)
				}

				metrics.record(elapsedMs, result)

				if verbose {
					fmt.Printf("✓ %-20s | Archetype: %-22s | Risk: %-12s (%5.1f) | %.1f ms%s\n",
						req.ClientID,
						result.Classification.Archetype.ID,
						result.RiskProfile.Classification,
						result.RiskProfile.Score,
						elapsedMs,
						cacheTag(result.Metadata.CacheHit),
					)
				}
			}
		}()
	}

	for _, req := range requests {
		work <- req
	}
	close(work)

	wg.Wait()

	return metrics
}

func cacheTag(hit bool) string {
	if hit {
		return " [cached]"
	}
	return ""
}

func assess(client *http.Client, baseURL, tenantID string, req AssessRequest) (*AssessResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, baseURL+"/assess", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Tenant-ID", tenantID)

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var result AssessResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)-1) * p)
	return sorted[idx]
}

func printResults(m *Metrics, duration time.Duration) {
	fmt.Println("\n╔═══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                      BENCHMARK RESULTS                        ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════════╝")

	fmt.Printf("\n📊 RUN STATISTICS\n")
	fmt.Printf("   Total Processed:  %d\n", m.TotalProcessed)
	fmt.Printf("   Errors:           %d\n", m.TotalErrors)
	successes := m.TotalProcessed - m.TotalErrors
	if successes > 0 {
		fmt.Printf("   Cache Hits:       %d (%.2f%%)\n", m.CacheHits, 100*float64(m.CacheHits)/float64(successes))
	}

	sort.Float64s(m.latencies)

	fmt.Printf("\n⏱️  LATENCY\n")
	fmt.Printf("   Total Duration:   %v\n", duration.Round(time.Millisecond))
	if len(m.latencies) > 0 {
		var sum float64
		for _, l := range m.latencies {
			sum += l
		}
		fmt.Printf("   Avg:              %.2f ms\n", sum/float64(len(m.latencies)))
		fmt.Printf("   p50:              %.2f ms\n", percentile(m.latencies, 0.50))
		fmt.Printf("   p95:              %.2f ms\n", percentile(m.latencies, 0.95))
		fmt.Printf("   p99:              %.2f ms\n", percentile(m.latencies, 0.99))
		fmt.Printf("   Max:              %.2f ms\n", m.latencies[len(m.latencies)-1])
		fmt.Printf("   Throughput:       %.2f assessments/sec\n", float64(m.TotalProcessed)/duration.Seconds())
	}

	fmt.Printf("\n🧭 ARCHETYPE DISTRIBUTION\n")
	printDistribution(m.archetypes, successes)

	fmt.Printf("\n📈 RISK BAND DISTRIBUTION\n")
	printDistribution(m.riskBands, successes)

	fmt.Println()
}

func printDistribution(counts map[string]int64, total int64) {
	if total == 0 {
		fmt.Println("   (no results)")
		return
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("   %-24s %8d (%.2f%%)\n", k, counts[k], 100*float64(counts[k])/float64(total))
	}
}
