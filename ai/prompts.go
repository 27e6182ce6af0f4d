package ai

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Prompt template names
const (
	PromptRestockSystem   = "restock_system"
	PromptRestockInsight  = "restock_insight"
	PromptAssistantSystem = "assistant_system"
)

var builtinPrompts = map[string]string{
	PromptRestockSystem: "Anda adalah pakar Logistik E-commerce. Berikan instruksi restock yang tepat.",
	PromptRestockInsight: `Analisis parameter stok ini:
Produk: {PRODUCT}
Stok Sekarang: {STOCK}
Penjualan Harian: {DAILY_SALES}
Lead Time: {LEAD_TIME} hari
Safety Stock: {SAFETY_STOCK}

{FACTS}

Berikan 2 kalimat strategi restock yang spesifik menggunakan angka-angka tersebut dalam Bahasa Indonesia.`,
	PromptAssistantSystem: "Anda adalah AI Riset Produk dari TokPee. Tugas Anda adalah membantu penjual melakukan riset produk populer " +
		"di marketplace Indonesia (seperti Tokopedia, Shopee, TikTok Shop), memberikan ide deskripsi produk SEO-friendly, " +
		"menganalisis kompetisi, dan memberikan saran optimasi toko. " +
		"Gunakan bahasa Indonesia yang santai tapi profesional (ala startup tech).",
}

// PromptManager - Simple external prompt loader with built-in defaults
type PromptManager struct {
	PromptsDir string
}

// NewPromptManager creates a prompt manager. An empty dir uses only the
// built-in templates.
func NewPromptManager(promptsDir string) *PromptManager {
	return &PromptManager{PromptsDir: promptsDir}
}

// LoadPrompt loads a prompt template by name. A file <name>.txt in PromptsDir
// overrides the built-in template.
func (pm *PromptManager) LoadPrompt(name string) (string, error) {
	if pm.PromptsDir != "" {
		path := filepath.Join(pm.PromptsDir, name+".txt")
		content, err := os.ReadFile(path)
		if err == nil {
			return string(content), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to load prompt %s: %w", name, err)
		}
	}

	if builtin, ok := builtinPrompts[name]; ok {
		return builtin, nil
	}
	return "", fmt.Errorf("prompt template not found: %s", name)
}

// RenderPrompt replaces {PLACEHOLDER} with values
func (pm *PromptManager) RenderPrompt(name string, replacements map[string]string) (string, error) {
	template, err := pm.LoadPrompt(name)
	if err != nil {
		return "", err
	}

	result := template
	for placeholder, value := range replacements {
		placeholderKey := "{" + placeholder + "}"
		result = strings.ReplaceAll(result, placeholderKey, value)
	}

	return result, nil
}
