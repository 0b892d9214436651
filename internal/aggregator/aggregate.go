package aggregator

import (
	"sort"

	"github.com/jengzang/survey-dashboard-go/internal/models"
)

// CountByCode counts records per answer code in scale order.
// Only codes that occur are listed.
func CountByCode(records []models.LongResponseRecord) models.AnswerFrequency {
	counts := make(map[models.AnswerCode]int)
	for _, rec := range records {
		counts[rec.Code]++
	}

	codes := make([]models.AnswerCode, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sortCodes(codes)

	freq := make(models.AnswerFrequency, 0, len(codes))
	for _, code := range codes {
		freq = append(freq, models.CodeCount{Code: code, Count: counts[code]})
	}
	return freq
}

// Proportions converts frequencies into shares of the total, largest first.
// Ties keep scale order.
func Proportions(freq models.AnswerFrequency) models.AnswerProportion {
	total := freq.Total()

	shares := make(models.AnswerProportion, 0, len(freq))
	for _, c := range freq {
		share := 0.0
		if total > 0 {
			share = float64(c.Count) / float64(total)
		}
		shares = append(shares, models.CodeShare{Code: c.Code, Count: c.Count, Share: share})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return scaleRank(shares[i].Code) < scaleRank(shares[j].Code)
	})
	return shares
}

type questionCode struct {
	question string
	code     models.AnswerCode
}

// CountByQuestionAndCode counts records per (question, code) pair.
// Absent combinations are not materialized.
func CountByQuestionAndCode(records []models.LongResponseRecord) models.PerQuestionAnswerCounts {
	counts := make(map[questionCode]int)
	for _, rec := range records {
		counts[questionCode{rec.Question, rec.Code}]++
	}

	out := make(models.PerQuestionAnswerCounts, 0, len(counts))
	for key, n := range counts {
		out = append(out, models.QuestionCodeCount{Question: key.question, Code: key.code, Count: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Question != out[j].Question {
			return out[i].Question < out[j].Question
		}
		ri, rj := scaleRank(out[i].Code), scaleRank(out[j].Code)
		if ri != rj {
			return ri < rj
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// MeanScoreByQuestion averages scores per question, ignoring unscored records.
// A question without any scored record is omitted.
func MeanScoreByQuestion(records []models.LongResponseRecord) models.PerQuestionMeanScore {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, rec := range records {
		if !rec.Scored() {
			continue
		}
		sums[rec.Question] += rec.Score
		counts[rec.Question]++
	}

	questions := make([]string, 0, len(counts))
	for q := range counts {
		questions = append(questions, q)
	}
	sort.Strings(questions)

	means := make(models.PerQuestionMeanScore, 0, len(questions))
	for _, q := range questions {
		means = append(means, models.QuestionMean{
			Question:  q,
			MeanScore: float64(sums[q]) / float64(counts[q]),
			Responses: counts[q],
		})
	}
	return means
}

// CountBySentiment counts annotated records per sentiment, largest first.
// Ties keep Positive, Neutral, Negative order.
func CountBySentiment(records []models.LongResponseRecord) models.SentimentDistribution {
	counts := make(map[models.Sentiment]int)
	for _, rec := range records {
		if rec.Sentiment == "" {
			continue
		}
		counts[rec.Sentiment]++
	}

	dist := make(models.SentimentDistribution, 0, len(counts))
	for s, n := range counts {
		dist = append(dist, models.SentimentCount{Sentiment: s, Count: n})
	}

	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return sentimentRank(dist[i].Sentiment) < sentimentRank(dist[j].Sentiment)
	})
	return dist
}

// sortCodes sorts by scale order; unknown codes follow, alphabetically
func sortCodes(codes []models.AnswerCode) {
	sort.Slice(codes, func(i, j int) bool {
		ri, rj := scaleRank(codes[i]), scaleRank(codes[j])
		if ri != rj {
			return ri < rj
		}
		return codes[i] < codes[j]
	})
}
