package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"finplanner/internal/knowledge"
	"finplanner/internal/llm"
	"finplanner/internal/models"
)

// Generation budgets per operation, matching the advisory tone each needs
const (
	insightTemperature = 0.7

	spendingInsightTokens = 300
	actionItemTokens      = 100
	goalRecTokens         = 300
	chatTokens            = 500

	maxSpendingInsights = 4
	maxGoalRecs         = 3
	maxActionItems      = 3
	maxChatSources      = 3
	chatSourceMaxChars  = 200
	chatHistoryTurns    = 5
	chatContextSnippets = 5
)

type insightService struct {
	provider llm.Provider
	store    KnowledgeSearcherInterface
	metrics  MetricsRecorderInterface
}

// NewInsightService creates a new InsightServiceInterface instance. The
// service never returns collaborator errors; every operation degrades to
// deterministic fallback content.
func NewInsightService(provider llm.Provider, store KnowledgeSearcherInterface, metrics MetricsRecorderInterface) InsightServiceInterface {
	return &insightService{
		provider: provider,
		store:    store,
		metrics:  metrics,
	}
}

// SpendingInsights generates 3-4 personalized observations about a spending
// analysis, grounded on retrieved budgeting tips. Collaborator failures fall
// back to deterministic insights with Source set to fallback.
func (s *insightService) SpendingInsights(ctx context.Context, analysis *models.SpendingAnalysis, monthlyIncome *decimal.Decimal) *models.InsightResult {
	topCategory := analysis.TopCategory()
	queryTopic := topCategory
	if queryTopic == "" {
		queryTopic = "general"
	}

	tips, err := s.store.Search(ctx, "budgeting tips for "+queryTopic, knowledge.CollectionBudgetingTips, 2)
	if err != nil {
		log.Warn().Err(err).Msg("budgeting tip retrieval failed, using fallback insights")
		return s.spendingFallback(analysis, "spending_insights")
	}

	var sb strings.Builder
	sb.WriteString("Spending Analysis:\n")
	fmt.Fprintf(&sb, "- Total spent: $%s\n", analysis.TotalSpent)
	fmt.Fprintf(&sb, "- Total income: $%s\n", analysis.TotalIncome)
	if monthlyIncome != nil {
		fmt.Fprintf(&sb, "- Monthly income: $%s\n", monthlyIncome)
	}
	if topCategory != "" {
		fmt.Fprintf(&sb, "- Top spending category: %s ($%s)\n", topCategory, analysis.TopCategories[0].Amount)
	}
	sb.WriteString("\nRelevant Tips:\n")
	for _, tip := range tips {
		fmt.Fprintf(&sb, "- %s\n", tip.Text)
	}

	systemPrompt := `You are a friendly financial advisor. Generate 3-4 specific, actionable insights
about the user's spending. Be encouraging but honest. Focus on:
1. One notable observation about their spending
2. One area for improvement with a specific suggestion
3. One positive aspect of their financial behavior

Keep each insight to 1-2 sentences. Be conversational and supportive.`

	response, err := s.generate(ctx, llm.GenerateRequest{
		Prompt:       sb.String() + "\nGenerate insights about this spending pattern.",
		SystemPrompt: systemPrompt,
		Temperature:  insightTemperature,
		MaxTokens:    spendingInsightTokens,
	})
	if err != nil {
		log.Warn().Err(err).Msg("insight generation failed, using fallback insights")
		return s.spendingFallback(analysis, "spending_insights")
	}

	insights := parseAdviceLines(response, maxSpendingInsights)
	if len(insights) == 0 {
		return s.spendingFallback(analysis, "spending_insights")
	}

	s.count("insight.generated", "spending_insights", models.InsightSourceGenerated)
	return &models.InsightResult{Insights: insights, Source: models.InsightSourceGenerated}
}

func (s *insightService) spendingFallback(analysis *models.SpendingAnalysis, operation string) *models.InsightResult {
	s.count("insight.generated", operation, models.InsightSourceFallback)

	if top := analysis.TopCategory(); top != "" {
		return &models.InsightResult{
			Insights: []string{
				fmt.Sprintf("Your top spending category is %s, totaling $%s.", top, analysis.TopCategories[0].Amount),
				"Consider reviewing this category for potential savings opportunities.",
			},
			Source: models.InsightSourceFallback,
		}
	}

	return &models.InsightResult{
		Insights: []string{
			"No expenses were recorded for this period.",
			"Upload more transactions to unlock personalized insights.",
		},
		Source: models.InsightSourceFallback,
	}
}

// ActionItems returns up to three prioritized recommendations for the weakest
// health score components. Items are only produced for components scoring
// below 70; each carries its own generated or fallback recommendation.
func (s *insightService) ActionItems(ctx context.Context, health *models.HealthScoreResult) []models.ActionItem {
	type scoredComponent struct {
		name      string
		component models.ComponentScore
	}

	ranked := make([]scoredComponent, 0, len(health.Components))
	for name, component := range health.Components {
		ranked = append(ranked, scoredComponent{name: name, component: component})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].component.Score != ranked[j].component.Score {
			return ranked[i].component.Score < ranked[j].component.Score
		}
		return ranked[i].name < ranked[j].name
	})

	items := []models.ActionItem{}
	for _, entry := range ranked {
		if len(items) >= maxActionItems {
			break
		}
		if entry.component.Score >= 70 {
			continue
		}

		area := strings.ReplaceAll(entry.name, "_", " ")

		priority := "medium"
		if entry.component.Score < 40 {
			priority = "high"
		}

		item := models.ActionItem{
			Area:         titleCase(area),
			CurrentScore: entry.component.Score,
			Target:       entry.component.Target,
			Priority:     priority,
		}

		recommendation, err := s.actionRecommendation(ctx, entry.name, area, entry.component)
		if err != nil {
			log.Warn().Err(err).Str("area", entry.name).Msg("action recommendation failed, using fallback")
			item.Recommendation = fmt.Sprintf("Focus on improving %s to reach target: %s", area, entry.component.Target)
			item.Source = models.InsightSourceFallback
			s.count("insight.generated", "action_items", models.InsightSourceFallback)
		} else {
			item.Recommendation = recommendation
			item.Source = models.InsightSourceGenerated
			s.count("insight.generated", "action_items", models.InsightSourceGenerated)
		}

		items = append(items, item)
	}

	return items
}

func (s *insightService) actionRecommendation(ctx context.Context, name, area string, component models.ComponentScore) (string, error) {
	tips, err := s.store.Search(ctx, "improve "+area, knowledge.CollectionFinancialKnowledge, 1)
	if err != nil {
		return "", err
	}

	tipText := "N/A"
	if len(tips) > 0 {
		tipText = tips[0].Text
	}

	prompt := fmt.Sprintf(`Financial area: %s
Current score: %.1f (target: %s)
Relevant tip: %s

What's ONE specific action to improve this?`, name, component.Score, component.Target, tipText)

	response, err := s.generate(ctx, llm.GenerateRequest{
		Prompt: prompt,
		SystemPrompt: `Generate ONE specific, actionable recommendation (1-2 sentences).
Be direct and practical.`,
		Temperature: insightTemperature,
		MaxTokens:   actionItemTokens,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(response), nil
}

// GoalRecommendations generates up to three suggestions for reaching a goal,
// falling back to a fixed trio when generation fails
func (s *insightService) GoalRecommendations(ctx context.Context, goalName string, plan *models.SavingsPlan, spending map[string]decimal.Decimal) *models.InsightResult {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Goal: %s\n", goalName)
	fmt.Fprintf(&sb, "Monthly savings needed: $%s\n", plan.MonthlySavingsNeeded)
	fmt.Fprintf(&sb, "Months remaining: %.1f\n", plan.MonthsRemaining)
	fmt.Fprintf(&sb, "Feasible: %t\n", plan.Feasible)

	if len(spending) > 0 {
		sb.WriteString("\nCurrent spending breakdown:\n")
		categories := make([]string, 0, len(spending))
		for category := range spending {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			fmt.Fprintf(&sb, "- %s: $%s\n", category, spending[category])
		}
	}

	systemPrompt := `You are a supportive financial coach. Generate 3 specific, actionable
recommendations to help the user reach their goal. Be encouraging and practical.
Focus on:
1. How to find the required monthly savings
2. Specific spending areas to reduce (if spending data available)
3. Motivation or alternative strategies

Keep each recommendation to 1-2 sentences.`

	response, err := s.generate(ctx, llm.GenerateRequest{
		Prompt:       sb.String() + "\nGenerate recommendations to help reach this goal.",
		SystemPrompt: systemPrompt,
		Temperature:  insightTemperature,
		MaxTokens:    goalRecTokens,
	})
	if err == nil {
		if recommendations := parseAdviceLines(response, maxGoalRecs); len(recommendations) > 0 {
			s.count("insight.generated", "goal_recommendations", models.InsightSourceGenerated)
			return &models.InsightResult{Insights: recommendations, Source: models.InsightSourceGenerated}
		}
	} else {
		log.Warn().Err(err).Str("goal", goalName).Msg("goal recommendation generation failed, using fallback")
	}

	s.count("insight.generated", "goal_recommendations", models.InsightSourceFallback)
	return &models.InsightResult{
		Insights: []string{
			fmt.Sprintf("Save $%s per month to reach your goal on time.", plan.MonthlySavingsNeeded),
			"Set up automatic transfers to your savings account on payday.",
			"Review your budget monthly and adjust as needed.",
		},
		Source: models.InsightSourceFallback,
	}
}

// Chat answers a conversational question grounded on snippets retrieved from
// all knowledge collections. On failure the answer is assembled from the
// retrieved snippets, or a static line when retrieval failed too.
func (s *insightService) Chat(ctx context.Context, message string, history []models.ChatMessage) *models.ChatAnswer {
	var retrieved []knowledge.Snippet

	results, err := s.store.SearchAll(ctx, message, 2)
	if err != nil {
		log.Warn().Err(err).Msg("knowledge retrieval failed for chat")
	} else {
		// Flatten in fixed collection order so context and sources are
		// deterministic for a given query
		for _, collection := range []string{
			knowledge.CollectionFinancialKnowledge,
			knowledge.CollectionBudgetingTips,
			knowledge.CollectionTaxRules,
		} {
			retrieved = append(retrieved, results[collection]...)
		}
	}

	contextSnippets := retrieved
	if len(contextSnippets) > chatContextSnippets {
		contextSnippets = contextSnippets[:chatContextSnippets]
	}

	var contextSB strings.Builder
	for _, snippet := range contextSnippets {
		fmt.Fprintf(&contextSB, "- %s\n", snippet.Text)
	}

	systemPrompt := fmt.Sprintf(`You are a helpful financial planning assistant. You provide
personalized, actionable advice to help users improve their financial health.

Use the following financial knowledge to inform your responses:
%s
Be friendly, encouraging, and specific. If you don't have enough information
to give accurate advice, ask clarifying questions.`, contextSB.String())

	var conversation strings.Builder
	start := len(history) - chatHistoryTurns
	if start < 0 {
		start = 0
	}
	for _, turn := range history[start:] {
		fmt.Fprintf(&conversation, "%s: %s\n", turn.Role, turn.Content)
	}

	sources := chatSources(retrieved)

	response, err := s.generate(ctx, llm.GenerateRequest{
		Prompt:       conversation.String() + "user: " + message,
		SystemPrompt: systemPrompt,
		Temperature:  insightTemperature,
		MaxTokens:    chatTokens,
	})
	if err != nil {
		log.Warn().Err(err).Msg("chat generation failed, using fallback answer")
		s.count("chat.completed", "chat", models.InsightSourceFallback)
		return &models.ChatAnswer{
			Response: chatFallbackResponse(contextSnippets),
			Sources:  sources,
			Source:   models.InsightSourceFallback,
		}
	}

	s.count("chat.completed", "chat", models.InsightSourceGenerated)
	return &models.ChatAnswer{
		Response: strings.TrimSpace(response),
		Sources:  sources,
		Source:   models.InsightSourceGenerated,
	}
}

func chatSources(retrieved []knowledge.Snippet) []models.ChatSource {
	if len(retrieved) == 0 {
		return nil
	}

	limit := len(retrieved)
	if limit > maxChatSources {
		limit = maxChatSources
	}

	sources := make([]models.ChatSource, 0, limit)
	for _, snippet := range retrieved[:limit] {
		text := snippet.Text
		// rune-based cut so non-ASCII snippet text is never split mid-character
		if runes := []rune(text); len(runes) > chatSourceMaxChars {
			text = string(runes[:chatSourceMaxChars]) + "..."
		}

		category := snippet.Metadata["category"]
		if category == "" {
			category = "general"
		}

		sources = append(sources, models.ChatSource{Text: text, Category: category})
	}

	return sources
}

func chatFallbackResponse(snippets []knowledge.Snippet) string {
	if len(snippets) == 0 {
		return "I'm unable to answer right now. Please try again in a moment."
	}

	var sb strings.Builder
	sb.WriteString("Here is some guidance that may help:\n")
	for _, snippet := range snippets {
		fmt.Fprintf(&sb, "- %s\n", snippet.Text)
	}
	return strings.TrimSpace(sb.String())
}

func (s *insightService) generate(ctx context.Context, req llm.GenerateRequest) (string, error) {
	start := time.Now()
	response, err := s.provider.Generate(ctx, req)
	if s.metrics != nil {
		s.metrics.RecordProcessingTime("llm.generation", time.Since(start))
	}
	return response, err
}

func (s *insightService) count(name, operation, source string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(name, map[string]string{"operation": operation, "source": source})
	}
}

// parseAdviceLines extracts advice lines from a model response, stripping
// enumeration and bullet prefixes and dropping anything too short to be a
// complete sentence.
func parseAdviceLines(response string, limit int) []string {
	lines := []string{}

	for _, raw := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(raw)
		if len(trimmed) <= 20 {
			continue
		}

		cleaned := strings.TrimLeft(trimmed, "123456789.-•* ")
		if cleaned == "" {
			continue
		}

		lines = append(lines, cleaned)
		if len(lines) == limit {
			break
		}
	}

	return lines
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
