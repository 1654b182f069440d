package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ByLCY/chatshot/binding"
	"github.com/ByLCY/chatshot/layout"
	"github.com/ByLCY/chatshot/renderer"
	canvasrenderer "github.com/ByLCY/chatshot/renderer/canvas"
	"github.com/ByLCY/chatshot/transcript"
)

func main() {
	input := flag.String("in", "transcript.txt", "转写文本路径")
	output := flag.String("out", "content", "输出根目录（每次运行生成时间戳子目录）")
	configPath := flag.String("config", "", "YAML 配置路径，覆盖默认布局参数")
	dataJSON := flag.String("data", "", "绑定到消息文本的 JSON 数据")
	seed := flag.Int64("seed", 0, "时间戳随机种子，0 表示按时钟播种")
	debugDir := flag.String("debug-dir", "", "布局调试 JSON 输出目录")
	flag.Parse()

	cfg := layout.DefaultConfig()
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("读取配置文件失败: %v", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Fatalf("解析配置文件失败: %v", err)
		}
	}

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	var r renderer.Renderer = canvasrenderer.NewRenderer(cfg.FontPaths)
	outDir, err := run(*input, *output, *debugDir, cfg, inputData, rngSeed, r)
	if err != nil {
		log.Fatalf("生成对话截图失败: %v", err)
	}
	fmt.Printf("已生成截图目录：%s\n", outDir)
}

// run 串联解析、分段、布局与渲染，返回本次运行的输出目录。
func run(inputPath, outputRoot, debugDir string, cfg layout.Config, data any, seed int64, r renderer.Renderer) (string, error) {
	if r == nil {
		return "", fmt.Errorf("renderer 不能为空")
	}
	file, err := os.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("无法打开转写文件 %s: %w", inputPath, err)
	}
	defer file.Close()

	convos, err := transcript.Conversations(file)
	if err != nil {
		return "", fmt.Errorf("解析转写文本失败: %w", err)
	}
	if len(convos) == 0 {
		return "", fmt.Errorf("转写文本 %s 中没有任何对话", inputPath)
	}

	m, ok := r.(layout.Measurer)
	if !ok {
		return "", fmt.Errorf("renderer 未实现文本度量接口")
	}

	outDir := filepath.Join(outputRoot, time.Now().Format("01_02_2006_150405"))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}
	if debugDir != "" {
		if err := os.MkdirAll(debugDir, 0o755); err != nil {
			return "", fmt.Errorf("创建调试目录失败: %w", err)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for i, convo := range convos {
		if data != nil {
			for j := range convo {
				convo[j].Text = binding.Interpolate(convo[j].Text, data)
			}
		}

		result, err := layout.Build(convo, cfg, layout.BuildOptions{Measurer: m, Rand: rng})
		if err != nil {
			return "", fmt.Errorf("第 %d 个对话布局失败: %w", i+1, err)
		}
		if debugDir != "" {
			debugPath := filepath.Join(debugDir, fmt.Sprintf("conversation_%d.json", i+1))
			if err := layout.WriteDebugJSON(result, debugPath); err != nil {
				return "", fmt.Errorf("输出调试 JSON 失败: %w", err)
			}
		}

		pngBytes, err := r.Render(result)
		if err != nil {
			return "", fmt.Errorf("第 %d 个对话渲染失败: %w", i+1, err)
		}
		outPath := filepath.Join(outDir, fmt.Sprintf("conversation_%d.png", i+1))
		if err := os.WriteFile(outPath, pngBytes, 0o644); err != nil {
			return "", fmt.Errorf("写入图像文件失败: %w", err)
		}
	}

	return outDir, nil
}
