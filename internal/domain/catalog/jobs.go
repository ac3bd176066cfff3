package catalog

import "math/rand/v2"

type Job struct {
	ID     string
	Name   string
	Emoji  string
	MinPay int64
	MaxPay int64
}

var jobs = []Job{
	{ID: "survey", Name: "Bird Survey Assistant", Emoji: "📊", MinPay: 75, MaxPay: 150},
	{ID: "photography", Name: "Wildlife Photography", Emoji: "📸", MinPay: 100, MaxPay: 200},
	{ID: "guide", Name: "Nature Guide", Emoji: "🥾", MinPay: 60, MaxPay: 120},
	{ID: "nest_monitoring", Name: "Nest Monitoring", Emoji: "🥚", MinPay: 80, MaxPay: 160},
	{ID: "conservation", Name: "Conservation Volunteer", Emoji: "🌱", MinPay: 50, MaxPay: 100},
	{ID: "band_recovery", Name: "Bird Band Recovery", Emoji: "🏷️", MinPay: 90, MaxPay: 180},
	{ID: "data_entry", Name: "Citizen Science Data Entry", Emoji: "💻", MinPay: 70, MaxPay: 140},
	{ID: "rehabilitation", Name: "Wildlife Rehabilitation Aid", Emoji: "🏥", MinPay: 85, MaxPay: 170},
}

func AllJobs() []Job {
	out := make([]Job, len(jobs))
	copy(out, jobs)
	return out
}

func JobByID(id string) (Job, bool) {
	for _, j := range jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}

// OfferJobs picks n distinct jobs at random.
func OfferJobs(rng *rand.Rand, n int) []Job {
	pool := AllJobs()
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}
