package mockdata

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	vo "github.com/esit-pro/service-desk/internal/domain/servicerequest/valueobjects"
	"github.com/esit-pro/service-desk/internal/shared/random"
)

// Generator synthesizes realistic service request records. It is a pure
// function of its random source, so a seeded source yields reproducible
// datasets.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator builds a generator over the given source. A nil source
// falls back to a time-seeded one.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, now: time.Now()}
}

var generatorCategories = []string{
	"Network", "Hardware", "Software", "Security",
	"User Management", "Data Management", "Facilities", "Licensing",
}

// categoryTags is the per-category tag vocabulary.
var categoryTags = map[string][]string{
	"Network":         {"outage", "wifi", "connectivity", "switch", "latency", "dns"},
	"Hardware":        {"printer", "laptop", "monitor", "peripherals", "replacement", "warranty"},
	"Software":        {"crash", "update", "installation", "compatibility", "license", "bug"},
	"Security":        {"vpn", "access", "phishing", "audit", "permissions", "firewall"},
	"User Management": {"new-hire", "offboarding", "email", "accounts", "distribution-lists"},
	"Data Management": {"backup", "migration", "restore", "archive", "integrity"},
	"Facilities":      {"server-room", "cooling", "power", "cabling", "maintenance"},
	"Licensing":       {"renewal", "licenses", "subscription", "compliance", "billing"},
}

var titleTemplates = []string{
	"%s Issue Reported by %s Department",
	"%s Failure Affecting %s Team",
	"Request: %s Support for %s",
	"%s Maintenance Needed in %s",
	"Recurring %s Problem in %s Office",
}

var descriptionTemplates = []string{
	"The %s department reports a %s problem affecting %d workstations. The issue started approximately %d hours ago and is impacting daily operations. Please investigate and advise on next steps.",
	"Multiple users in %s have raised a %s concern over the past %d days. About %d machines show the same symptoms. A site visit may be required to diagnose the root cause.",
	"%s has requested assistance with a %s matter. The request covers %d devices and should be completed within %d business days to avoid schedule slippage.",
}

var departments = []string{
	"Accounting", "Marketing", "Sales", "Engineering", "Legal",
	"Finance", "Operations", "Warehouse", "Human Resources", "Executive",
}

var clientNames = []string{
	"Sarah Johnson", "Mark Wilson", "Alicia Rodriguez", "Tom Johnson",
	"David Chen", "Robert Greene", "Lisa Park", "Jennifer Kim",
	"Brian Williams", "Patricia Jones", "Nathan Roberts", "Emily Wong",
}

var stockImages = []string{
	"https://images.unsplash.com/photo-1558494949-ef010cbdcc31?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1612815154858-60aa4c59eaa6?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1593642702749-b7d2a804fbcf?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1505373877841-8d25f7d46678?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
}

// statusChoices biases higher-priority requests toward being worked on.
func statusChoices(priority vo.Priority) []random.Choice[vo.Status] {
	switch {
	case priority >= 4:
		return []random.Choice[vo.Status]{
			{Value: vo.StatusNew, Weight: 2},
			{Value: vo.StatusInProgress, Weight: 5},
			{Value: vo.StatusWaitingOnClient, Weight: 2},
			{Value: vo.StatusResolved, Weight: 1},
		}
	case priority == 3:
		return []random.Choice[vo.Status]{
			{Value: vo.StatusNew, Weight: 4},
			{Value: vo.StatusInProgress, Weight: 3},
			{Value: vo.StatusWaitingOnClient, Weight: 2},
			{Value: vo.StatusResolved, Weight: 1},
		}
	default:
		return []random.Choice[vo.Status]{
			{Value: vo.StatusNew, Weight: 6},
			{Value: vo.StatusInProgress, Weight: 2},
			{Value: vo.StatusWaitingOnClient, Weight: 1},
			{Value: vo.StatusResolved, Weight: 1},
		}
	}
}

// ServiceRequests generates count records sorted by descending priority,
// ties broken by most recent creation. IDs are left empty for the
// repository to allocate. Generation fails only when a synthesized record
// does not validate, which aborts the whole batch.
func (g *Generator) ServiceRequests(count int) ([]*servicerequest.ServiceRequest, error) {
	out := make([]*servicerequest.ServiceRequest, 0, count)
	for i := 0; i < count; i++ {
		sr, err := g.serviceRequest()
		if err != nil {
			return nil, fmt.Errorf("generate record %d: %w", i+1, err)
		}
		out = append(out, sr)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (g *Generator) serviceRequest() (*servicerequest.ServiceRequest, error) {
	category := random.From(g.rng, generatorCategories)
	priority := vo.Priority(random.IntBetween(g.rng, int(vo.PriorityMin), int(vo.PriorityMax)))
	department := random.From(g.rng, departments)
	clientName := random.From(g.rng, clientNames)

	created := g.now.
		Add(-time.Duration(random.IntBetween(g.rng, 0, 21*24)) * time.Hour).
		Add(-time.Duration(random.IntBetween(g.rng, 0, 48)) * time.Hour)

	sr := &servicerequest.ServiceRequest{
		Title:            fmt.Sprintf(random.From(g.rng, titleTemplates), category, department),
		Description:      g.description(category, department),
		ClientName:       clientName,
		ClientEmail:      emailFor(clientName),
		Category:         category,
		Priority:         priority,
		Status:           random.Pick(g.rng, statusChoices(priority)),
		Tags:             g.tags(category, priority),
		SourceMessageIDs: []string{},
		CreatedAt:        created,
		UpdatedAt:        g.now,
	}

	if random.Chance(g.rng, 0.3) {
		sr.ImageURL = random.From(g.rng, stockImages)
	}

	probe := *sr
	probe.ID = "unassigned"
	if err := probe.Validate(); err != nil {
		return nil, err
	}
	return sr, nil
}

func (g *Generator) description(category, department string) string {
	tpl := random.From(g.rng, descriptionTemplates)
	return fmt.Sprintf(tpl,
		department,
		category,
		random.IntBetween(g.rng, 1, 12),
		random.IntBetween(g.rng, 1, 10),
	)
}

// tags draws 1-3 category tags and escalates labelling as priority rises.
func (g *Generator) tags(category string, priority vo.Priority) []string {
	vocab := categoryTags[category]
	n := random.IntBetween(g.rng, 1, 3)

	picked := make([]string, 0, n+2)
	for _, idx := range g.rng.Perm(len(vocab))[:n] {
		picked = append(picked, vocab[idx])
	}

	if priority >= 4 && random.Chance(g.rng, float64(priority)*0.15) {
		picked = append(picked, "urgent")
	}
	if priority == 5 && random.Chance(g.rng, 0.5) {
		picked = append(picked, "critical")
	}
	return picked
}

// emailFor derives "jsmith@company.com" style addresses from a full name.
func emailFor(name string) string {
	parts := strings.Fields(strings.ToLower(name))
	if len(parts) < 2 {
		return parts[0] + "@company.com"
	}
	return fmt.Sprintf("%c%s@company.com", parts[0][0], parts[len(parts)-1])
}
